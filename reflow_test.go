package nast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Seed scenario 2 (reflow half): widening a 10-column soft-wrapped line to
// 15 columns rejoins it into one row and migrates the WRAPNEXT cursor.
func TestReflowWidenRejoinsSoftWrappedLine(t *testing.T) {
	term := New(WithSize(24, 10))
	term.WriteString("aaaaaaaaaaaaaaa") // 15 'a's: wraps to row0+row1

	term.Resize(24, 15)

	require.Equal(t, 15, term.Cols())
	require.Equal(t, "aaaaaaaaaaaaaaa", term.LineContent(0))

	row, col := term.CursorPos()
	require.Equal(t, 0, row)
	require.Equal(t, 15, col)
	require.True(t, term.cursor.State.has(StateWrapNext))
}

// P4: reflow to a narrower width still preserves the logical text, just
// rewrapped at the new boundary.
func TestReflowNarrowPreservesText(t *testing.T) {
	term := New(WithSize(24, 15))
	term.WriteString("aaaaaaaaaaaaaaa")

	term.Resize(24, 10)

	require.Equal(t, "aaaaaaaaaa", term.LineContent(0))
	require.Equal(t, "aaaaa", term.LineContent(1))
}

func TestReflowPreservesUnrelatedRows(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("line one\r\nline two\r\n")

	term.Resize(30, 80)

	require.Equal(t, "line one", term.LineContent(0))
	require.Equal(t, "line two", term.LineContent(1))
	require.Equal(t, 30, term.Rows())
}
