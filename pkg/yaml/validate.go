package yaml

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"

	schemagen "github.com/invopop/jsonschema"
)

// Validator validates decoded YAML against a JSON schema.
// Uses [github.com/santhosh-tekuri/jsonschema/v6].
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the JSON schema in schemaData, registered under url.
func NewValidator(url string, schemaData []byte) (*Validator, error) {
	var schema any

	err := json.Unmarshal(schemaData, &schema)
	if err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()

	err = compiler.AddResource(url, schema)
	if err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	jss, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &Validator{schema: jss}, nil
}

// NewValidatorFor reflects a JSON schema from the Go type of v with
// [github.com/invopop/jsonschema] and compiles it.
func NewValidatorFor(url string, v any) (*Validator, error) {
	r := &schemagen.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
	}

	schemaData, err := json.Marshal(r.Reflect(v))
	if err != nil {
		return nil, fmt.Errorf("marshal reflected schema: %w", err)
	}

	return NewValidator(url, schemaData)
}

func MustNewValidatorFor(url string, v any) *Validator {
	val, err := NewValidatorFor(url, v)
	if err != nil {
		panic(err)
	}

	return val
}

// Validate validates data against the schema. Failures are returned as an
// [*Error] whose Path points at the most specific failing location.
func (s *Validator) Validate(data any) error {
	err := s.schema.Validate(data)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("schema validation: %w", err)
	}

	return &Error{
		Err:  validationErr,
		Path: pathFromLocation(deepestLocation(validationErr)),
	}
}

// deepestLocation returns the longest InstanceLocation among err and its causes.
func deepestLocation(err *jsonschema.ValidationError) []string {
	longest := err.InstanceLocation

	for _, cause := range err.Causes {
		candidate := deepestLocation(cause)
		if len(candidate) > len(longest) {
			longest = candidate
		}
	}

	return longest
}

// pathFromLocation converts a JSON pointer segment list to a [*yaml.Path].
func pathFromLocation(location []string) *yaml.Path {
	current := NewPathBuilder().Root()

	for _, part := range location {
		index, err := strconv.ParseUint(part, 10, 0)
		if err == nil {
			current = current.Index(uint(index))
		} else {
			current = current.Child(part)
		}
	}

	return current.Build()
}
