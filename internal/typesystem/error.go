package typesystem

import (
	"errors"
	"fmt"
	"strings"

	"github.com/funvibe/typegen/internal/value"
)

// UnknownTypeError indicates a TCon whose name is not in the catalogue
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type: %s", e.Name)
}

func NewUnknownTypeError(name string) *UnknownTypeError {
	return &UnknownTypeError{Name: name}
}

// MismatchError reports a value that does not conform to a type.
// Path locates the offending element inside composite values, outermost
// first (e.g. ["[2]", "[:key]"]).
type MismatchError struct {
	Expected string
	Got      value.Value
	Path     []string
}

func (e *MismatchError) Error() string {
	got := "nothing"
	if e.Got != nil {
		got = e.Got.Inspect()
	}
	if len(e.Path) == 0 {
		return fmt.Sprintf("expected %s, got %s", e.Expected, got)
	}
	return fmt.Sprintf("at %s: expected %s, got %s", strings.Join(e.Path, ""), e.Expected, got)
}

func mismatch(t Type, v value.Value) *MismatchError {
	return &MismatchError{Expected: t.String(), Got: v}
}

// at prefixes a path segment onto a nested mismatch.
func at(err error, segment string) error {
	var m *MismatchError
	if errors.As(err, &m) {
		m.Path = append([]string{segment}, m.Path...)
		return m
	}
	return err
}
