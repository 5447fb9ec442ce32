package yaml

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// Encoder writes block-style YAML with two-space indentation. Sequences are
// indented under their parent key unless [WithIndentSequence] says otherwise.
type Encoder struct {
	e *yaml.Encoder
}

// EncodeOpt configures an [Encoder].
type EncodeOpt func(*encodeOptions)

type encodeOptions struct {
	indentSequence bool
}

// WithIndentSequence sets whether sequence items are indented. A top-level
// sequence should not be, so that items start at column 1.
func WithIndentSequence(indent bool) EncodeOpt {
	return func(o *encodeOptions) {
		o.indentSequence = indent
	}
}

func NewEncoder(w io.Writer, opts ...EncodeOpt) *Encoder {
	o := &encodeOptions{indentSequence: true}
	for _, opt := range opts {
		opt(o)
	}

	return &Encoder{
		e: yaml.NewEncoder(w, yaml.Indent(2), yaml.IndentSequence(o.indentSequence)),
	}
}

func (e *Encoder) Encode(v any) error {
	return e.e.Encode(v) //nolint:wrapcheck // Return the original error.
}

func (e *Encoder) Close() error {
	return e.e.Close() //nolint:wrapcheck // Return the original error.
}

// Marshal encodes v as a single YAML document.
func Marshal(v any, opts ...EncodeOpt) ([]byte, error) {
	b := &bytes.Buffer{}

	enc := NewEncoder(b, opts...)

	err := enc.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return nil, fmt.Errorf("close yaml encoder: %w", err)
	}

	return b.Bytes(), nil
}
