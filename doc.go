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

/*
Package rxlex provides a generic tokenizer driven by an ordered list of regular
expressions. It is intended as the front end of hand-written parsers.

Definitions

A lexer is built from a list of definitions, each pairing a token type with a
pattern:

	l, err := rxlex.New([]rxlex.Definition{
		{Type: "Operation", Pattern: `[+-]`},
		{Type: "Identifier", Pattern: `[a-z]\w+`},
		{Type: "NumberLiteral", Pattern: `\d+`},
		{Type: "Space", Pattern: `\s+`},
	}, rxlex.Reject("Space"))

Patterns follow the syntax of github.com/dlclark/regexp2 and are compiled in
multiline mode. A pattern that does not compile makes New fail with a
*DefinitionError; there are no other errors.

Matching rules

Starting at the beginning of the source text, the lexer tries every definition
in order at the current position. A pattern only matches if its match starts
exactly at that position: there is no forward search. The first definition
that matches a non-empty string wins, regardless of the length of the matches
of subsequent definitions. That is, order definitions sharing a common prefix
from the most to the least specific:

	{Type: "Keyword", Pattern: `if\b`},
	{Type: "Identifier", Pattern: `\w+`},

Patterns matching the empty string at the current position are treated as not
matching, so that every token advances the position by at least one rune.

Tokens whose type was passed to the Reject option are consumed but not
delivered.

Once no definition matches, the sequence ends. With the Remainder option, the
unmatched tail of the source text (which may be empty) is delivered as a last
token with an empty type. With Remainder(true) and no rejected types, the
concatenation of all token values is the source text.

Consuming tokens

Lexer.Iter returns a Sequence that scans its source lazily, one token per
request:

	for t := range l.Iter(src).All() {
		// ...
	}

A Sequence can be iterated any number of times, concurrently or not. Every
iteration starts a new independent scan. Scanner provides the same as a pull
interface, Lexer.Tokens collects all tokens in a slice and Reduce folds them.

Parsers that need to report unmatched input with a source location can use a
File and Lexer.Check.

The participle sub-package adapts a Lexer for use with
github.com/alecthomas/participle/v2.

*/
package rxlex
