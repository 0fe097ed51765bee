package rxlex_test

import (
	"errors"
	"testing"

	"github.com/db47h/rxlex"
	"github.com/stretchr/testify/require"
)

func TestNew_errors(t *testing.T) {
	_, err := rxlex.New([]rxlex.Definition{
		{Type: "Number", Pattern: `\d+`},
		{Type: "Group", Pattern: `(a`},
	})
	require.Error(t, err)
	var de *rxlex.DefinitionError
	require.True(t, errors.As(err, &de))
	require.Equal(t, 1, de.Index)
	require.Equal(t, "Group", de.Definition.Type)
	require.NotNil(t, errors.Unwrap(err))
	require.Contains(t, err.Error(), "definition 1 (Group)")

	_, err = rxlex.New([]rxlex.Definition{{Pattern: `x`}})
	require.ErrorIs(t, err, rxlex.ErrEmptyType)
	require.True(t, errors.As(err, &de))
	require.Equal(t, 0, de.Index)

	require.Panics(t, func() {
		rxlex.MustNew([]rxlex.Definition{{Type: "Bad", Pattern: `[`}})
	})
}

func TestLexer_Check(t *testing.T) {
	l := rxlex.MustNew([]rxlex.Definition{
		{Type: "Identifier", Pattern: `[a-z]+`},
		{Type: "Number", Pattern: `\d+`},
		{Type: "Operator", Pattern: `[=+]`},
		{Type: "Space", Pattern: `\s+`},
	}, rxlex.Reject("Space"))

	require.NoError(t, l.Check(rxlex.NewFile("ok", "let x = 2 + 3\nlet y = x\n")))
	require.NoError(t, l.Check(rxlex.NewFile("empty", "")))

	err := l.Check(rxlex.NewFile("input", "let x = 1\nlet y = 2 @ 3"))
	var ue *rxlex.UnmatchedError
	require.True(t, errors.As(err, &ue))
	require.Equal(t, rxlex.Position{Filename: "input", Offset: 20, Line: 2, Column: 11}, ue.Position)
	require.Equal(t, "@ 3", ue.Text)
	require.Equal(t, "let y = 2 @ 3\n          ^", ue.Excerpt)
	require.Equal(t, `input:2:11: no token matches "@ 3"`, err.Error())

	err = l.Check(rxlex.NewFile("", "x = #0123456789abcdefgh"))
	require.EqualError(t, err, `1:5: no token matches "#0123456789abcde…"`)
}
