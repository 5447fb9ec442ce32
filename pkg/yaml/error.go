package yaml

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
)

func NewPathBuilder() *yaml.PathBuilder {
	return &yaml.PathBuilder{}
}

// ErrorWrapper applies a fixed set of [ErrorOpt]s to every [Error] it wraps.
type ErrorWrapper struct {
	Opts []ErrorOpt
}

func NewErrorWrapper(opts ...ErrorOpt) *ErrorWrapper {
	return &ErrorWrapper{
		Opts: opts,
	}
}

// Wrap wraps an error with additional context for [Error]s.
// If the error isn't an [Error], it returns the original error unmodified.
func (ew *ErrorWrapper) Wrap(err error, opts ...ErrorOpt) error {
	if err == nil {
		return nil
	}

	var yamlErr *Error
	if errors.As(err, &yamlErr) {
		for _, opt := range ew.Opts {
			opt(yamlErr)
		}

		for _, opt := range opts {
			opt(yamlErr)
		}

		return yamlErr
	}

	return err
}

// Error represents a YAML error. It includes the original error, and the
// location where it occurred, either as a [*yaml.Path] or a [*token.Token].
type Error struct {
	Err    error
	Path   *yaml.Path
	Token  *token.Token
	Source []byte
}

func NewError(err error, opts ...ErrorOpt) *Error {
	e := &Error{Err: err}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

type ErrorOpt func(e *Error)

func WithPath(path *yaml.Path) ErrorOpt {
	return func(e *Error) {
		e.Path = path
	}
}

func WithToken(tk *token.Token) ErrorOpt {
	return func(e *Error) {
		e.Token = tk
	}
}

func WithSource(source []byte) ErrorOpt {
	return func(e *Error) {
		e.Source = source
	}
}

func (e Error) Error() string {
	if e.Err == nil {
		return ""
	}

	tk := e.Token
	if tk == nil && e.Path != nil && len(e.Source) > 0 {
		var err error

		tk, err = getTokenFromPath(e.Source, e.Path)
		if err != nil {
			slog.Debug("could not locate error in source",
				slog.String("path", e.Path.String()),
				slog.Any("error", err),
			)
		}
	}

	if tk != nil {
		return fmt.Sprintf("[%d:%d] %v", tk.Position.Line, tk.Position.Column, e.Err)
	}
	if e.Path != nil {
		return fmt.Sprintf("error at %s: %v", e.Path.String(), e.Err)
	}

	return e.Err.Error()
}

func (e Error) Unwrap() error {
	return e.Err
}

func getTokenFromPath(source []byte, path *yaml.Path) (*token.Token, error) {
	file, err := parser.ParseBytes(source, 0)
	if err != nil {
		return nil, fmt.Errorf("parse source bytes into ast.File: %w", err)
	}

	node, err := path.FilterFile(file)
	if err != nil {
		return nil, fmt.Errorf("filter from ast.File by YAMLPath: %w", err)
	}

	// FilterFile returns the value node; point at the key when there is one.
	keyToken := findKeyToken(file, path)
	if keyToken != nil {
		return keyToken, nil
	}

	return node.GetToken(), nil
}

// findKeyToken attempts to find the KEY token for the given path by looking
// in the parent node.
func findKeyToken(file *ast.File, path *yaml.Path) *token.Token {
	pathStr := path.String()

	lastDot := strings.LastIndex(pathStr, ".")
	lastBracket := strings.LastIndex(pathStr, "[")

	if lastDot == -1 && lastBracket == -1 {
		return nil // Root path, no parent.
	}

	if lastDot <= lastBracket {
		// Sequence index, no key to find.
		return nil
	}

	parentPathStr := pathStr[:lastDot]
	lastSegment := pathStr[lastDot+1:]

	parentPath, err := yaml.PathString(parentPathStr)
	if err != nil {
		return nil
	}

	parentNode, err := parentPath.FilterFile(file)
	if err != nil {
		return nil
	}

	switch n := parentNode.(type) {
	case *ast.MappingNode:
		for _, val := range n.Values {
			if val.Key.String() == lastSegment {
				return val.Key.GetToken()
			}
		}
	case *ast.MappingValueNode:
		if n.Key.String() == lastSegment {
			return n.Key.GetToken()
		}
	}

	return nil
}
