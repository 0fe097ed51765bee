// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package rxlex

import (
	"iter"

	"github.com/dlclark/regexp2"
)

// A Lexer converts source text into tokens according to an ordered list of
// definitions.
//
// At any given position in the source text, the first definition in the list
// whose pattern matches a non-empty string wins, even if a later definition
// would match a longer one.
//
// A Lexer is immutable and safe for concurrent use.
//
type Lexer struct {
	ms []matcher
	o  options
}

// New compiles the given definitions and returns a new Lexer. If a definition
// cannot be compiled, New returns a *DefinitionError.
//
func New(defs []Definition, opts ...Option) (*Lexer, error) {
	l := &Lexer{
		ms: make([]matcher, 0, len(defs)),
		o: options{
			reject: make(map[string]struct{}),
			flags:  regexp2.Multiline,
		},
	}
	for _, opt := range opts {
		opt(&l.o)
	}
	for i, d := range defs {
		m, err := compile(i, d, l.o.flags)
		if err != nil {
			return nil, err
		}
		l.ms = append(l.ms, m)
	}
	return l, nil
}

// MustNew is like New but panics if a definition cannot be compiled.
//
func MustNew(defs []Definition, opts ...Option) *Lexer {
	l, err := New(defs, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// Types returns the distinct token types of the lexer's definitions in order
// of first appearance.
//
func (l *Lexer) Types() []string {
	var ts []string
	seen := make(map[string]bool, len(l.ms))
	for _, m := range l.ms {
		if !seen[m.t] {
			seen[m.t] = true
			ts = append(ts, m.t)
		}
	}
	return ts
}

// Iter returns the token sequence for src. Nothing is scanned until the
// sequence is consumed.
//
func (l *Lexer) Iter(src string) Sequence {
	return Sequence{l: l, src: src}
}

// Tokens returns all the tokens of src.
//
func (l *Lexer) Tokens(src string) []Token {
	var ts []Token
	for t := range l.Iter(src).All() {
		ts = append(ts, t)
	}
	return ts
}

// Check scans the whole content of f and reports an *UnmatchedError if
// some part of it cannot be tokenized. The Remainder option is ignored.
//
func (l *Lexer) Check(f *File) error {
	s := newScanner(l, f.Source())
	for {
		if _, ok := s.Next(); !ok {
			break
		}
	}
	if s.Rest() == "" {
		return nil
	}
	return f.Unmatched(s.Pos())
}

// A Sequence is a lazily scanned sequence of tokens.
//
// A Sequence is restartable: every call to All or Scanner starts a new scan
// from the beginning of the source text, independent of any other.
//
type Sequence struct {
	l   *Lexer
	src string
}

// Scanner returns a new Scanner positioned at the start of the source text.
//
func (s Sequence) Scanner() *Scanner {
	return newScanner(s.l, s.src)
}

// All returns an iterator over the tokens of the sequence. Tokens are scanned
// one at a time as the iteration proceeds.
//
func (s Sequence) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		sc := s.Scanner()
		for t, ok := sc.Next(); ok; t, ok = sc.Next() {
			if !yield(t) {
				return
			}
		}
	}
}

// Reduce folds the tokens of s from left to right: it calls f with init and
// the first token, then with the previous result and the next token, and so
// on. It returns the last result, or init if the sequence is empty.
//
func Reduce[A any](s Sequence, f func(acc A, t Token) A, init A) A {
	acc := init
	for t := range s.All() {
		acc = f(acc, t)
	}
	return acc
}
