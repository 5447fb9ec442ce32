package listio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/macropower/listcomp/pkg/yaml"
)

// Format names an encoding for a list of items.
type Format string

const (
	// FormatText is one item per line.
	FormatText Format = "text"
	// FormatJSON is a single JSON array.
	FormatJSON Format = "json"
	// FormatYAML is a single YAML sequence.
	FormatYAML Format = "yaml"
)

// MaxLineSize is the longest text line, in bytes, the readers accept.
const MaxLineSize = 16 * 1024 * 1024

var (
	ErrUnknownFormat = errors.New("unknown format")
	ErrInvalidItem   = errors.New("invalid item")
	ErrMultiline     = errors.New("contains a line break")

	AllFormats = []string{
		string(FormatText),
		string(FormatJSON),
		string(FormatYAML),
	}
)

// ParseError reports an item that could not be parsed, with its 1-based
// position in the input (line number for text, index otherwise).
type ParseError struct {
	Err      error
	Value    string
	Position int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("item %d (%q): %v", e.Position, e.Value, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrInvalidItem, e.Err}
}

// GetFormat parses a format name, case-insensitively.
func GetFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if slices.Contains([]Format{FormatText, FormatJSON, FormatYAML}, f) {
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// ParseInts converts each string to an int, reporting the first failure as
// a [*ParseError]. Surrounding whitespace is ignored.
func ParseInts(items []string) ([]int, error) {
	nums := make([]int, len(items))
	for i, item := range items {
		n, err := strconv.Atoi(strings.TrimSpace(item))
		if err != nil {
			return nil, &ParseError{Err: unwrapNumError(err), Value: item, Position: i + 1}
		}

		nums[i] = n
	}

	return nums, nil
}

// ReadInts reads a list of integers from r in the given format. In text,
// blank lines are skipped.
func ReadInts(r io.Reader, f Format) ([]int, error) {
	if f != FormatText {
		nums := []int{}

		err := decodeSequence(r, &nums)
		if err != nil {
			return nil, err
		}

		return nums, nil
	}

	nums := []int{}

	sc := newScanner(r)
	line := 0

	for sc.Scan() {
		line++

		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		n, err := strconv.Atoi(text)
		if err != nil {
			return nil, &ParseError{Err: unwrapNumError(err), Value: text, Position: line}
		}

		nums = append(nums, n)
	}

	err := sc.Err()
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return nums, nil
}

// ReadStrings reads a list of strings from r in the given format. In text,
// every line is an item and a trailing newline does not add an empty one.
func ReadStrings(r io.Reader, f Format) ([]string, error) {
	if f != FormatText {
		items := []string{}

		err := decodeSequence(r, &items)
		if err != nil {
			return nil, err
		}

		return items, nil
	}

	items := []string{}

	sc := newScanner(r)
	for sc.Scan() {
		items = append(items, strings.TrimSuffix(sc.Text(), "\r"))
	}

	err := sc.Err()
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return items, nil
}

// Write encodes items to w in the given format. Text output rejects items
// that span lines with [ErrInvalidItem], since they would not read back as
// a single item.
func Write[T any](w io.Writer, f Format, items []T) error {
	if items == nil {
		items = []T{}
	}

	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)

		err := enc.Encode(items)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil

	case FormatYAML:
		var (
			b   []byte
			err error
		)

		if len(items) == 0 {
			b = []byte("[]\n")
		} else {
			b, err = yaml.Marshal(items, yaml.WithIndentSequence(false))
			if err != nil {
				return err //nolint:wrapcheck // Already wrapped.
			}
		}

		_, err = w.Write(b)
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		return nil

	case FormatText:
		bw := bufio.NewWriter(w)
		for i, item := range items {
			text := fmt.Sprint(item)
			if strings.ContainsAny(text, "\r\n") {
				return &ParseError{Err: ErrMultiline, Value: text, Position: i + 1}
			}

			_, err := fmt.Fprintln(bw, text)
			if err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}

		err := bw.Flush()
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// decodeSequence decodes a single JSON or YAML sequence from r into v.
// An empty document leaves v unchanged.
func decodeSequence(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	ew := yaml.NewErrorWrapper(yaml.WithSource(data))

	err = yaml.Unmarshal(data, v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidItem, ew.Wrap(err))
	}

	return nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, MaxLineSize)

	return sc
}

func unwrapNumError(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err
	}

	return err
}
