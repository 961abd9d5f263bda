package nast

// setModes applies CSI h/l (SM/RM), routing private (DEC, '?') modes and
// ANSI modes to their distinct numbering spaces.
func (t *Terminal) setModes(private byte, params []int, on bool) {
	for _, n := range params {
		if private == '?' {
			t.setPrivateMode(n, on)
		} else {
			t.setANSIMode(n, on)
		}
	}
}

func (t *Terminal) setPrivateMode(n int, on bool) {
	switch n {
	case 1: // DECCKM
		t.modeFlags.apply(ModeAppCursor, on)
	case 5: // DECSCNM
		t.modeFlags.apply(ModeReverseVideo, on)
	case 6: // DECOM
		t.cursor.State.apply(StateOrigin, on)
		t.setCursorPos(0, 0)
	case 7: // DECAWM
		t.modeFlags.apply(ModeWrap, on)
	case 9: // X10 mouse
		t.modeFlags.apply(ModeMouseX10, on)
	case 25: // DECTCEM
		t.modeFlags.apply(ModeShowCursor, on)
		t.cursor.Visible = on
	case 47: // legacy alt screen, no cursor save/clear
		t.switchScreen(on, false, false)
	case 1000: // normal mouse tracking
		t.modeFlags.apply(ModeMouseNormal, on)
	case 1002:
		t.modeFlags.apply(ModeMouseMotionPress, on)
	case 1003:
		t.modeFlags.apply(ModeMouseAnyMotion, on)
	case 1004:
		t.modeFlags.apply(ModeFocusEvents, on)
	case 1006:
		t.modeFlags.apply(ModeMouseSGR, on)
	case 1034:
		t.modeFlags.apply(Mode8BitInput, on)
	case 1047: // alt screen, clear on exit, no cursor save
		t.switchScreen(on, false, true)
	case 1049: // alt screen with cursor save/restore and clear-on-enter
		t.switchScreen(on, true, true)
	case 2004:
		t.modeFlags.apply(ModeBracketedPaste, on)
	default:
		t.log.Debug().Int("mode", n).Bool("set", on).Msg("unrecognized private mode")
	}
}

func (t *Terminal) setANSIMode(n int, on bool) {
	switch n {
	case 4: // IRM
		t.modeFlags.apply(ModeInsert, on)
	case 12: // SRM
		t.modeFlags.apply(ModeEchoSuppressed, on)
	case 20: // LNM
		t.modeFlags.apply(ModeCRLF, on)
	default:
		t.log.Debug().Int("mode", n).Bool("set", on).Msg("unrecognized ANSI mode")
	}
}

// switchScreen enters or leaves the alternate screen. withCursor saves/
// restores the cursor around the switch (mode 1049); withClear
// blanks the alt screen on entry and (for 1047/1049) on exit as well
// (modes 1047/1049, as opposed to bare 47 which does neither).
func (t *Terminal) switchScreen(enter, withCursor, withClear bool) {
	wantAlt := enter
	if wantAlt == (t.activeScreen == ScreenAlt) {
		return
	}
	if wantAlt {
		if withCursor {
			t.saveCursorLocked()
		}
		t.activeScreen = ScreenAlt
		t.modeFlags.set(ModeAltScreenActive)
		if withClear {
			for y := 0; y < t.row; y++ {
				t.clearRow(y)
			}
		}
	} else {
		if withClear {
			for y := 0; y < t.row; y++ {
				t.clearRow(y)
			}
		}
		t.activeScreen = ScreenMain
		t.modeFlags.clear(ModeAltScreenActive)
		if withCursor {
			t.restoreCursorLocked()
		}
	}
	t.invalidateSelectionIfWrongScreen()
}

func (s *CursorState) apply(bit CursorState, on bool) {
	if on {
		*s |= bit
	} else {
		*s &^= bit
	}
}
