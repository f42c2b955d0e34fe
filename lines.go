package aoc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is wrapped by errors for input that does not have the
// expected shape.
var ErrMalformed = errors.New("malformed input")

// ParseError reports a line of input that could not be handled.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Lines trims surrounding whitespace from s and splits it into lines.
// Carriage returns before a newline are dropped.
func Lines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// MapLines calls f on each line and collects the results. The first error
// is returned as a *ParseError for the offending line.
func MapLines[T any](lines []string, f func(line string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(lines))
	for i, line := range lines {
		v, err := f(line)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: line, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}
