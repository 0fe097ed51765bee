// Package participle adapts an rxlex.Lexer to the lexer interfaces of
// github.com/alecthomas/participle/v2.
//
//	import rxparticiple "github.com/db47h/rxlex/participle"
//
//	type Expr struct {
//		Left  int    `@NumberLiteral`
//		Op    string `@Operation`
//		Right int    `@NumberLiteral`
//	}
//
//	l := rxlex.MustNew(defs, rxlex.Reject("Space"))
//	p := participle.MustBuild[Expr](participle.Lexer(rxparticiple.New(l)))
//
package participle

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/db47h/rxlex"
)

// Definition implements lexer.Definition and lexer.StringDefinition.
//
type Definition struct {
	l       *rxlex.Lexer
	symbols map[string]lexer.TokenType
}

var (
	_ lexer.Definition       = (*Definition)(nil)
	_ lexer.StringDefinition = (*Definition)(nil)
)

// New returns a participle lexer definition for l. Token types are numbered
// from lexer.EOF-1 downwards in order of first appearance in l's
// definitions.
//
func New(l *rxlex.Lexer) *Definition {
	d := &Definition{
		l:       l,
		symbols: map[string]lexer.TokenType{"EOF": lexer.EOF},
	}
	for i, t := range l.Types() {
		d.symbols[t] = lexer.EOF - 1 - lexer.TokenType(i)
	}
	return d
}

// Symbols implements lexer.Definition.
//
func (d *Definition) Symbols() map[string]lexer.TokenType {
	return d.symbols
}

// Lex implements lexer.Definition.
//
func (d *Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(b))
}

// LexString implements lexer.StringDefinition.
//
func (d *Definition) LexString(filename string, input string) (lexer.Lexer, error) {
	f := rxlex.NewFile(filename, input)
	return &Lexer{
		d: d,
		f: f,
		s: d.l.Iter(input).Scanner(),
	}, nil
}

// Lexer implements lexer.Lexer.
//
// Once all tokens have been delivered, Next returns an EOF token, or an
// *rxlex.UnmatchedError if part of the input could not be tokenized.
//
type Lexer struct {
	d   *Definition
	f   *rxlex.File
	s   *rxlex.Scanner
	err error
}

// Next implements lexer.Lexer.
//
func (l *Lexer) Next() (lexer.Token, error) {
	if l.err != nil {
		return lexer.Token{}, l.err
	}
	t, ok := l.s.Next()
	if ok && !t.IsRemainder() {
		return lexer.Token{
			Type:  l.d.symbols[t.Type],
			Value: t.Value,
			Pos:   l.position(t.Pos),
		}, nil
	}
	if l.s.Rest() != "" {
		l.err = l.f.Unmatched(l.s.Pos())
		return lexer.Token{}, l.err
	}
	return lexer.EOFToken(l.position(l.s.Pos())), nil
}

func (l *Lexer) position(p rxlex.Pos) lexer.Position {
	pos := l.f.Position(p)
	return lexer.Position{
		Filename: pos.Filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}
