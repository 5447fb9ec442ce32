// Package log configures [log/slog] handlers for the listcomp CLI.
//
// The text format is rendered by [github.com/charmbracelet/log]; logfmt and
// JSON use the standard library handlers.
package log
