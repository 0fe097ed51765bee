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

import "unicode/utf8"

// A Scanner holds the state of a single tokenization of a source text. It is
// the explicit pull interface behind Sequence.All.
//
// A Scanner must not be used concurrently, but any number of Scanners created
// from the same Lexer can be driven independently.
//
type Scanner struct {
	str    string
	src    []rune // str as runes, for the matchers
	ms     []matcher
	reject map[string]struct{}
	rest   bool
	n      int  // cursor, rune index in src
	offs   Pos  // cursor, byte offset in the source string
	done   bool // no more tokens
}

func newScanner(l *Lexer, src string) *Scanner {
	return &Scanner{
		str:    src,
		src:    []rune(src),
		ms:     l.ms,
		reject: l.o.reject,
		rest:   l.o.remainder,
	}
}

// Next returns the next token and true, or a zero Token and false once the
// sequence has ended. After Next has returned false, it always returns false.
//
func (s *Scanner) Next() (Token, bool) {
	if s.done {
		return Token{}, false
	}
	for {
		t, l := s.matchAt()
		if l == 0 {
			break
		}
		p := s.offs
		s.advance(l)
		v := s.str[p:s.offs]
		if _, ok := s.reject[t]; ok {
			continue
		}
		return Token{Type: t, Value: v, Pos: p}, true
	}

	s.done = true
	if !s.rest {
		return Token{}, false
	}
	return Token{Value: s.str[s.offs:], Pos: s.offs}, true
}

// advance moves the cursor n runes forward. The byte offset is tracked on the
// original string so that invalid UTF-8 sequences, which decode to
// utf8.RuneError in src, keep their original width.
//
func (s *Scanner) advance(n int) {
	for ; n > 0; n-- {
		_, sz := utf8.DecodeRuneInString(s.str[s.offs:])
		s.offs += Pos(sz)
		s.n++
	}
}

// matchAt tries all matchers in order at the cursor and returns the type and
// rune length of the first non-empty match. l is 0 if nothing matches.
//
func (s *Scanner) matchAt() (t string, l int) {
	if s.n >= len(s.src) {
		return "", 0
	}
	for i := range s.ms {
		m := &s.ms[i]
		if l = m.match(s.src, s.n); l > 0 {
			return m.t, l
		}
	}
	return "", 0
}

// Pos returns the byte offset of the cursor.
//
func (s *Scanner) Pos() Pos {
	return s.offs
}

// Rest returns the part of the source text that has not been consumed yet.
//
func (s *Scanner) Rest() string {
	return s.str[s.offs:]
}
