package nast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTerminalDefaults(t *testing.T) {
	term := New()
	require.Equal(t, 24, term.Rows())
	require.Equal(t, 80, term.Cols())
	require.True(t, term.CursorVisible())
}

func TestTerminalWithSize(t *testing.T) {
	term := New(WithSize(40, 120))
	require.Equal(t, 40, term.Rows())
	require.Equal(t, 120, term.Cols())
}

// Seed scenario 1: Simple print.
func TestSimplePrint(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("Hello\r\n")

	row, col := term.CursorPos()
	require.Equal(t, 1, row)
	require.Equal(t, 0, col)

	for i, want := range "Hello" {
		g := term.Cell(0, i)
		require.Equal(t, want, g.Char)
		require.False(t, g.Flags.Has(FlagNoRender))
	}
	for i := 5; i < 80; i++ {
		g := term.Cell(0, i)
		require.Equal(t, ' ', g.Char)
		require.True(t, g.Flags.Has(FlagNoRender))
	}
}

// Seed scenario 2: Soft-wrap and reflow.
func TestSoftWrapAndReflow(t *testing.T) {
	term := New(WithSize(24, 10))
	term.WriteString("aaaaaaaaaaaaaaa") // 15 'a's

	require.Equal(t, "aaaaaaaaaa", term.LineContent(0))
	g9 := term.Cell(0, 9)
	require.True(t, g9.Flags.Has(FlagSoftWrap))
	require.Equal(t, "aaaaa", term.LineContent(1))

	term.Resize(24, 15)

	require.Equal(t, "aaaaaaaaaaaaaaa", term.LineContent(0))
	g14 := term.Cell(0, 14)
	require.False(t, g14.Flags.Has(FlagSoftWrap))

	row, col := term.CursorPos()
	require.Equal(t, 0, row)
	require.Equal(t, 15, col)
}

// Seed scenario 3: SGR round-trip.
func TestSGRRoundTrip(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1b[1;31mX\x1b[0mY")

	gx := term.Cell(0, 0)
	require.Equal(t, 'X', gx.Char)
	require.True(t, gx.Flags.Has(FlagBold))
	require.Equal(t, DefaultPalette[1], gx.Fg) // SGR 31 selects palette index 1 (red)

	gy := term.Cell(0, 1)
	require.Equal(t, 'Y', gy.Char)
	require.False(t, gy.Flags.Has(FlagBold))
	require.Equal(t, DefaultForeground, gy.Fg)
}

// Seed scenario 4: Alt-screen cursor save.
func TestAltScreenCursorSave(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("xy")
	beforeRow, beforeCol := term.CursorPos()

	term.WriteString("\x1b[?1049h")
	term.WriteString("abc")
	term.WriteString("\x1b[?1049l")

	row, col := term.CursorPos()
	require.Equal(t, beforeRow, row)
	require.Equal(t, beforeCol, col)
	require.False(t, term.IsAltScreen())
}

// Seed scenario 6: Bracketed-paste mode.
func TestBracketedPaste(t *testing.T) {
	var out fakeResponse
	term := New(WithSize(24, 80), WithResponse(&out))
	term.WriteString("\x1b[?2004h")

	term.PasteText("pasted")
	require.Contains(t, string(out.data), "\x1b[200~pasted\x1b[201~")
}

func TestCursorPositionReport(t *testing.T) {
	var out fakeResponse
	term := New(WithSize(24, 80), WithResponse(&out))
	term.WriteString("\x1b[5;10H")
	out.data = nil
	term.WriteString("\x1b[6n")
	require.Equal(t, "\x1b[5;10R", string(out.data))
}

func TestModeIdempotence(t *testing.T) {
	term := New(WithSize(24, 80))
	before := term.modeFlags
	term.WriteString("\x1b[?7h")
	term.WriteString("\x1b[?7l")
	require.Equal(t, before, term.modeFlags)
}

type fakeResponse struct {
	data []byte
}

func (f *fakeResponse) Write(p []byte) (int, error) {
	f.data = append(f.data, p...)
	return len(p), nil
}
