package yaml

import (
	"bytes"
	"errors"
	"io"

	"github.com/goccy/go-yaml"
)

// Decoder reads YAML (or JSON) documents from a stream.
type Decoder struct {
	d *yaml.Decoder
}

// DecodeOpt configures a [Decoder].
type DecodeOpt func(*[]yaml.DecodeOption)

// WithStrict rejects mapping keys that do not correspond to a struct field.
func WithStrict() DecodeOpt {
	return func(o *[]yaml.DecodeOption) {
		*o = append(*o, yaml.DisallowUnknownField())
	}
}

func NewDecoder(r io.Reader, opts ...DecodeOpt) *Decoder {
	var yamlOpts []yaml.DecodeOption
	for _, opt := range opts {
		opt(&yamlOpts)
	}

	return &Decoder{
		d: yaml.NewDecoder(r, yamlOpts...),
	}
}

// Decode decodes the next document into v. It returns [io.EOF] when the
// stream holds no further documents.
func (d *Decoder) Decode(v any) error {
	err := d.d.Decode(v)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return io.EOF
	}

	var yamlErr yaml.Error
	if errors.As(err, &yamlErr) {
		return &Error{
			Err:   errors.New(yamlErr.GetMessage()),
			Token: yamlErr.GetToken(),
		}
	}

	//nolint:wrapcheck // Return the original error if it's not a [yaml.Error].
	return err
}

// Unmarshal decodes the first document in data into v. Empty input leaves
// v untouched.
func Unmarshal(data []byte, v any, opts ...DecodeOpt) error {
	err := NewDecoder(bytes.NewReader(data), opts...).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}
