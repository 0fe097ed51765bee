package rxlex_test

import (
	"strings"
	"testing"

	"github.com/db47h/rxlex"
)

func BenchmarkLexer(b *testing.B) {
	l := rxlex.MustNew(exprDefs, rxlex.Reject("Space"))
	src := strings.Repeat("foo  + bar2-34\n", 1000)

	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s := l.Iter(src).Scanner()
		for _, ok := s.Next(); ok; _, ok = s.Next() {
		}
	}
}
