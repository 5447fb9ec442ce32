// Package listio reads and writes lists of items as plain text (one item per
// line), JSON arrays, or YAML sequences.
package listio
