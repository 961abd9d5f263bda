package nast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMouseX10Report(t *testing.T) {
	var out fakeResponse
	term := New(WithSize(24, 80), WithResponse(&out))
	term.WriteString("\x1b[?9h")

	term.ReportMouse(MouseEvent{Button: MouseButtonLeft, Kind: MouseEventPress, X: 4, Y: 2})
	require.Equal(t, []byte{0x1b, '[', 'M', 32, 4 + 1 + 32, 2 + 1 + 32}, out.data)
}

func TestMouseX10IgnoresReleaseWhenOnlyPressTracked(t *testing.T) {
	var out fakeResponse
	term := New(WithSize(24, 80), WithResponse(&out))
	term.WriteString("\x1b[?9h")

	term.ReportMouse(MouseEvent{Button: MouseButtonLeft, Kind: MouseEventRelease, X: 0, Y: 0})
	require.Empty(t, out.data)
}

func TestMouseSGRReport(t *testing.T) {
	var out fakeResponse
	term := New(WithSize(24, 80), WithResponse(&out))
	term.WriteString("\x1b[?1006h")

	term.ReportMouse(MouseEvent{Button: MouseButtonLeft, Kind: MouseEventPress, X: 4, Y: 2})
	require.Equal(t, "\x1b[<0;5;3M", string(out.data))

	out.data = nil
	term.ReportMouse(MouseEvent{Button: MouseButtonLeft, Kind: MouseEventRelease, X: 4, Y: 2})
	require.Equal(t, "\x1b[<0;5;3m", string(out.data))
}

func TestFocusEventsGatedByMode(t *testing.T) {
	var out fakeResponse
	term := New(WithSize(24, 80), WithResponse(&out))

	term.ReportFocus(true)
	require.Empty(t, out.data)

	term.WriteString("\x1b[?1004h")
	term.ReportFocus(true)
	require.Equal(t, "\x1b[I", string(out.data))

	out.data = nil
	term.ReportFocus(false)
	require.Equal(t, "\x1b[O", string(out.data))
}
