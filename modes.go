package nast

// ModeFlag is the Terminal's persistent mode bitset (as opposed to the
// transient per-cursor StateWrapNext/StateOrigin bits).
type ModeFlag uint32

const (
	ModeUTF8 ModeFlag = 1 << iota
	// ModeWrap is DECAWM (autowrap, ANSI private mode 7).
	ModeWrap
	// ModeInsert is IRM, ANSI mode 4.
	ModeInsert
	// ModeAltScreenActive mirrors activeScreen for external inspection.
	ModeAltScreenActive
	// ModeCRLF is LNM, ANSI mode 20: line feed also returns the carriage.
	ModeCRLF
	// ModeEchoSuppressed is ANSI mode 12 (SRM): inverse sense - when set,
	// local echo is suppressed.
	ModeEchoSuppressed
	ModeSixelEnabled
	// ModeBracketedPaste is private mode 2004.
	ModeBracketedPaste
	// ModeReverseVideo is private mode 5 (DECSCNM).
	ModeReverseVideo
	// ModeShowCursor is private mode 25 (DECTCEM).
	ModeShowCursor
	// ModeAppCursor is private mode 1 (DECCKM).
	ModeAppCursor
	// ModeAppKeypad is set/cleared by ESC = / ESC >, not a CSI mode.
	ModeAppKeypad
	ModeMouseX10         // private mode 9
	ModeMouseNormal      // private mode 1000
	ModeMouseMotionPress // private mode 1002
	ModeMouseAnyMotion   // private mode 1003
	ModeMouseSGR         // private mode 1006
	ModeFocusEvents      // private mode 1004
	Mode8BitInput        // private mode 1034
)

func (m ModeFlag) Has(bit ModeFlag) bool { return m&bit != 0 }
func (m *ModeFlag) set(bit ModeFlag)     { *m |= bit }
func (m *ModeFlag) clear(bit ModeFlag)   { *m &^= bit }

func (m *ModeFlag) apply(bit ModeFlag, on bool) {
	if on {
		m.set(bit)
	} else {
		m.clear(bit)
	}
}

const defaultModeFlags = ModeWrap | ModeShowCursor | ModeUTF8 | ModeSixelEnabled

// ActiveScreen tags which of the two screens is live, avoiding a raw,
// potentially self-referential pointer from Terminal into Screen.
type ActiveScreen int

const (
	ScreenMain ActiveScreen = iota
	ScreenAlt
)
