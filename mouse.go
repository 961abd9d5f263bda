package nast

import "strconv"

// MouseButton identifies which button a mouse event concerns.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonNone // motion report with no button held
	MouseButtonWheelUp
	MouseButtonWheelDown
)

// MouseEventKind distinguishes press, release, and motion.
type MouseEventKind int

const (
	MouseEventPress MouseEventKind = iota
	MouseEventRelease
	MouseEventMotion
)

// MouseEvent is one mouse event, in 0-based terminal coordinates.
type MouseEvent struct {
	Button                 MouseButton
	Kind                   MouseEventKind
	X, Y                   int
	Shift, Alt, Ctrl       bool
}

// ReportMouse encodes ev per whichever tracking mode is enabled and
// writes it to the outbound queue. It is a no-op if no mouse mode is on,
// or if the event kind does not qualify for the active mode (plain 1000
// ignores motion; 1002 reports motion only while a button is held, which
// callers signal via MouseEventMotion with Button != MouseButtonNone).
func (t *Terminal) ReportMouse(ev MouseEvent) {
	switch {
	case t.modeFlags.Has(ModeMouseSGR):
		t.reportMouseSGR(ev)
	case t.modeFlags.Has(ModeMouseAnyMotion):
		t.reportMouseX10(ev)
	case t.modeFlags.Has(ModeMouseMotionPress):
		if ev.Kind == MouseEventMotion && ev.Button == MouseButtonNone {
			return
		}
		t.reportMouseX10(ev)
	case t.modeFlags.Has(ModeMouseNormal):
		if ev.Kind == MouseEventMotion {
			return
		}
		t.reportMouseX10(ev)
	case t.modeFlags.Has(ModeMouseX10):
		if ev.Kind != MouseEventPress {
			return
		}
		t.reportMouseX10(ev)
	}
}

func mouseButtonCode(ev MouseEvent) int {
	var cb int
	switch ev.Button {
	case MouseButtonMiddle:
		cb = 1
	case MouseButtonRight:
		cb = 2
	case MouseButtonNone:
		cb = 3
	case MouseButtonWheelUp:
		cb = 64
	case MouseButtonWheelDown:
		cb = 65
	default:
		cb = 0
	}
	if ev.Kind == MouseEventMotion && ev.Button != MouseButtonWheelUp && ev.Button != MouseButtonWheelDown {
		cb |= 32
	}
	if ev.Shift {
		cb |= 4
	}
	if ev.Alt {
		cb |= 8
	}
	if ev.Ctrl {
		cb |= 16
	}
	return cb
}

// reportMouseX10 encodes an X10/Normal/motion-tracking report: ESC [ M Cb
// Cx Cy, with every field offset by 32 so it stays in printable range.
// Release is reported as button code 3 regardless of which button was
// down, per the X10 protocol's inability to name the released button.
func (t *Terminal) reportMouseX10(ev MouseEvent) {
	cb := mouseButtonCode(ev)
	if ev.Kind == MouseEventRelease {
		cb = 3
	}
	buf := []byte{0x1b, '[', 'M', byte(cb + 32), byte(ev.X + 1 + 32), byte(ev.Y + 1 + 32)}
	t.queue.Append(buf)
	t.Flush()
}

// reportMouseSGR encodes mode 1006: ESC [ < Cb ; Cx ; Cy (M|m), with M
// for press/motion and m for release; unlike X10 framing, SGR reports
// the actual button on release and is not limited to 223 columns/rows.
func (t *Terminal) reportMouseSGR(ev MouseEvent) {
	cb := mouseButtonCode(ev)
	final := byte('M')
	if ev.Kind == MouseEventRelease {
		final = 'm'
	}
	s := "\x1b[<" + strconv.Itoa(cb) + ";" + strconv.Itoa(ev.X+1) + ";" + strconv.Itoa(ev.Y+1) + string(final)
	t.queue.Append([]byte(s))
	t.Flush()
}

// ReportFocus emits ESC [ I / ESC [ O on focus-in/out when mode 1004 is
// enabled; a no-op otherwise.
func (t *Terminal) ReportFocus(in bool) {
	if !t.modeFlags.Has(ModeFocusEvents) {
		return
	}
	if in {
		t.queue.Append([]byte("\x1b[I"))
	} else {
		t.queue.Append([]byte("\x1b[O"))
	}
	t.Flush()
}
