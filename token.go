package rxlex

import (
	"fmt"
	"strconv"
)

// Pos represents a byte offset in the source text.
//
type Pos int

// IsValid returns true if p is a valid position (i.e. p >= 0).
//
func (p Pos) IsValid() bool {
	return p >= 0
}

// A Token is a piece of source text classified by one of the lexer's
// definitions.
//
// The remainder token has an empty Type. It is only produced when the lexer
// is created with Remainder(true) and, if present, is always the last token of
// a sequence. Its Value holds the unmatched tail of the source text, possibly
// empty.
//
type Token struct {
	Type  string
	Value string
	Pos   Pos
}

// IsRemainder returns true if t is the remainder token.
//
func (t Token) IsRemainder() bool {
	return t.Type == ""
}

func (t Token) String() string {
	if t.IsRemainder() {
		return fmt.Sprintf("%d: <remainder> %s", t.Pos, strconv.Quote(t.Value))
	}
	return fmt.Sprintf("%d: %s %s", t.Pos, t.Type, strconv.Quote(t.Value))
}
