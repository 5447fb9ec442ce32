// Package yaml wraps [github.com/goccy/go-yaml] with the encoder and decoder
// settings used across listcomp, location-aware errors, and JSON schema
// validation of decoded documents.
package yaml
