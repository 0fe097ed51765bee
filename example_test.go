package rxlex_test

import (
	"fmt"
	"strings"

	"github.com/db47h/rxlex"
)

// Idiomatic usage
func ExampleLexer_Iter() {
	l := rxlex.MustNew([]rxlex.Definition{
		{Type: "Operation", Pattern: `[+-]`},
		{Type: "Identifier", Pattern: `[a-z]\w+`},
		{Type: "NumberLiteral", Pattern: `\d+`},
		{Type: "Space", Pattern: `\s+`},
	}, rxlex.Reject("Space"), rxlex.Remainder(true))

	for t := range l.Iter("foo  + bar2-34 ?").All() {
		fmt.Println(t)
	}

	// Output:
	// 0: Identifier "foo"
	// 5: Operation "+"
	// 7: Identifier "bar2"
	// 11: Operation "-"
	// 12: NumberLiteral "34"
	// 15: <remainder> "?"
}

// This example shows how to use a Scanner to pull tokens on demand.
//
func ExampleSequence_Scanner() {
	l := rxlex.MustNew([]rxlex.Definition{
		{Type: "Word", Pattern: `\w+`},
		{Type: "Space", Pattern: `\s+`},
	}, rxlex.Reject("Space"))

	s := l.Iter("lorem ipsum dolor sit amet").Scanner()
	for i := 0; i < 2; i++ {
		t, _ := s.Next()
		fmt.Println(t.Value)
	}
	fmt.Printf("%q\n", s.Rest())

	// Output:
	// lorem
	// ipsum
	// " dolor sit amet"
}

func ExampleReduce() {
	l := rxlex.MustNew([]rxlex.Definition{
		{Type: "Word", Pattern: `\pL+`},
		{Type: "Other", Pattern: `\PL+`},
	})

	words := rxlex.Reduce(l.Iter("Hello, 世界! How are you?"), func(acc []string, t rxlex.Token) []string {
		if t.Type == "Word" {
			acc = append(acc, strings.ToLower(t.Value))
		}
		return acc
	}, nil)
	fmt.Println(words)

	// Output:
	// [hello 世界 how are you]
}

// This example shows how to use Lexer.Check to display nicely formatted error
// messages.
//
func ExampleLexer_Check() {
	l := rxlex.MustNew([]rxlex.Definition{
		{Type: "Text", Pattern: `[^0-9]+`},
	})
	input := "＃〄 - Hello 世界 1<\ndéjà vu 2<"
	f := rxlex.NewFile("INPUT", input)

	err := l.Check(f)
	if ue, ok := err.(*rxlex.UnmatchedError); ok {
		fmt.Println(ue)
		for _, line := range strings.Split(ue.Excerpt, "\n") {
			fmt.Printf("|%s\n", line)
		}
	}

	// The following output will display correctly only with monospaced fonts
	// and a UTF-8 locale. The caret alignment will also be off with some fonts
	// like Fira Code and East Asian characters.

	// Output:
	// INPUT:1:23: no token matches "1<\ndéjà vu 2<"
	// |＃〄 - Hello 世界 1<
	// |                  ^
}
