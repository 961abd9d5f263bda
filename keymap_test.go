package nast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Seed scenario 5: Ctrl+Shift+'!' (keycode 0x21) at MOK2 emits the xterm
// "modify other keys" encoding with the full modifier parameter.
func TestModifiedKeyAtMOK2(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1b[>4;2m") // enable modifyOtherKeys level 2

	var out fakeResponse
	term.response = &out

	term.HandleKey(Key(0x21), KeyInput{Shift: true, Ctrl: true})
	require.Equal(t, "\x1b[27;6;33~", string(out.data))
}

// P8 (determinism): encoding the same input twice yields the same result.
func TestKeyEncoderDeterministic(t *testing.T) {
	in := KeyInput{Shift: true, Ctrl: true}
	a1, ok1 := matchKey(Key(0x21), in, -1)
	a2, ok2 := matchKey(Key(0x21), in, -1)
	require.Equal(t, ok1, ok2)
	require.Equal(t, a1, a2)
}

func TestArrowKeyAppCursorMode(t *testing.T) {
	normal, ok := matchKey(KeyUp, KeyInput{}, -1)
	require.True(t, ok)
	require.Equal(t, []byte("\x1b[A"), normal.Bytes)

	app, ok := matchKey(KeyUp, KeyInput{AppCursor: true}, -1)
	require.True(t, ok)
	require.Equal(t, []byte("\x1bOA"), app.Bytes)
}

func TestAltifyPrefixesEscAndRematchesWithoutAlt(t *testing.T) {
	// Alt+a with no MOK: ALTIFY re-matches plain 'a' and prefixes ESC.
	action, ok := matchKey(Key('a'), KeyInput{Alt: true}, -1)
	require.True(t, ok)
	require.Equal(t, []byte{0x1b, 'a'}, action.Bytes)
}

func TestCtrlLetterProducesControlCode(t *testing.T) {
	action, ok := matchKey(Key('a'), KeyInput{Ctrl: true}, -1)
	require.True(t, ok)
	require.Equal(t, []byte{0x01}, action.Bytes) // ctrl+a = 0x61 & 0x1f
}

func TestBracketPasteSideEffectFramesPastedText(t *testing.T) {
	term := New(WithSize(24, 80))
	var out fakeResponse
	term.response = &out

	term.WriteString("\x1b[?2004h")
	term.PasteText("hi")
	require.Equal(t, "\x1b[200~hi\x1b[201~", string(out.data))
}
