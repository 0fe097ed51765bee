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
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Position describes an arbitrary source position including the file, line, and column location.
//
type Position struct {
	Filename string
	Offset   int // byte offset, starting at 0
	Line     int // 1-based line number
	Column   int // 1-based column number (byte index)
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// A File represents a named source text. It handles source offset to
// line/column conversion.
//
type File struct {
	name  string
	src   string
	lines []Pos // 0-based line/Pos information
}

// NewFile returns a new File.
//
func NewFile(name, src string) *File {
	f := &File{
		name:  name,
		src:   src,
		lines: []Pos{0},
	}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			f.addLine(Pos(i+1), len(f.lines)+1)
		}
	}
	return f
}

// addLine adds a new line at the given offset. line is the 1-based line index.
//
func (f *File) addLine(pos Pos, line int) {
	l := len(f.lines)
	if (l > 0 && f.lines[l-1] >= pos) || l+1 != line {
		panic(ErrLine)
	}
	f.lines = append(f.lines, pos)
}

// Name returns the file name.
//
func (f *File) Name() string {
	return f.name
}

// Source returns the source text.
//
func (f *File) Source() string {
	return f.src
}

// Position returns the 1-based line and column for a given pos. The returned
// column is a byte offset, not a rune offset.
//
func (f *File) Position(pos Pos) Position {
	i := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > pos })
	return Position{f.name, int(pos), i, int(pos - f.lines[i-1] + 1)}
}

// LinePos returns the file offset of the given line, or -1 if there is no
// such line.
//
func (f *File) LinePos(line int) Pos {
	if line < 1 || line > len(f.lines) {
		return -1
	}
	return f.lines[line-1]
}

// Line returns the text of the line containing pos, without its line
// terminator.
//
func (f *File) Line(pos Pos) string {
	s := f.LinePos(f.Position(pos).Line)
	e := strings.IndexByte(f.src[s:], '\n')
	if e < 0 {
		return f.src[s:]
	}
	return strings.TrimSuffix(f.src[s:int(s)+e], "\r")
}

// Excerpt returns the line containing pos followed by a line with a caret
// under pos:
//
//	let x = 2 @ 3
//	          ^
//
// The caret is aligned for monospaced fonts with East Asian wide and
// fullwidth characters taking two cells. Tabs in the line are repeated in the
// padding.
//
func (f *File) Excerpt(pos Pos) string {
	l := f.Line(pos)
	b := f.Position(pos).Column - 1
	if b > len(l) {
		b = len(l)
	}
	return fmt.Sprintf("%s\n%s^", l, caretPad(l[:b]))
}

// Unmatched returns an *UnmatchedError for the source text from pos onwards.
//
func (f *File) Unmatched(pos Pos) *UnmatchedError {
	return &UnmatchedError{
		Position: f.Position(pos),
		Text:     f.src[pos:],
		Excerpt:  f.Excerpt(pos),
	}
}

// caretPad returns the blank text that covers s when rendered with a UTF-8
// locale and monospaced font. Tabs are kept as is.
//
func caretPad(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\t':
			b.WriteByte('\t')
		case !unicode.IsGraphic(r):
		default:
			switch width.LookupRune(r).Kind() {
			case width.EastAsianFullwidth, width.EastAsianWide:
				b.WriteString("  ")
			default:
				// EastAsianAmbiguous depends on the user locale. 2 if locale is CJK, 1 otherwise.
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}
