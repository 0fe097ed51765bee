package rxlex

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrEmptyType = errors.New("empty token type")
	ErrLine      = errors.New("invalid line number")
)

// A DefinitionError is returned by New when a token definition cannot be
// compiled.
//
type DefinitionError struct {
	Index      int // index of the definition in the list given to New
	Definition Definition
	Err        error
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("definition %d (%s): %v", e.Index, e.Definition.Type, e.Err)
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}

// An UnmatchedError reports source text that no definition could match.
//
type UnmatchedError struct {
	Position Position
	Text     string // the unmatched remainder
	Excerpt  string // source line with a caret under the error position
}

func (e *UnmatchedError) Error() string {
	r := []rune(e.Text)
	if len(r) > 16 {
		r = append(r[:16], '…')
	}
	return fmt.Sprintf("%s: no token matches %q", e.Position, string(r))
}
