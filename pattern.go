package rxlex

import (
	"github.com/dlclark/regexp2"
)

// A Definition pairs a token type with the pattern that recognizes it.
// Patterns use the syntax of github.com/dlclark/regexp2. Several definitions
// may share the same Type.
//
type Definition struct {
	Type    string
	Pattern string
}

// matcher is a compiled Definition. The underlying regexp only ever matches
// at the position it is given and keeps no match state between calls, so a
// single matcher can be shared by concurrent scans.
//
type matcher struct {
	t  string
	re *regexp2.Regexp
}

func compile(i int, d Definition, flags regexp2.RegexOptions) (matcher, error) {
	if d.Type == "" {
		return matcher{}, &DefinitionError{Index: i, Definition: d, Err: ErrEmptyType}
	}
	// \G pins the match to the start position.
	re, err := regexp2.Compile(`\G(?:`+d.Pattern+`)`, flags&^regexp2.RightToLeft)
	if err != nil {
		return matcher{}, &DefinitionError{Index: i, Definition: d, Err: err}
	}
	return matcher{t: d.Type, re: re}, nil
}

// match returns the length in runes of the match starting exactly at src[at:]
// or 0 if there is no match. Empty matches are reported as no match.
//
func (m *matcher) match(src []rune, at int) int {
	mt, err := m.re.FindRunesMatchStartingAt(src, at)
	if err != nil || mt == nil || mt.Index != at {
		// err is only ever a match timeout, which we never set.
		return 0
	}
	return mt.Length
}
