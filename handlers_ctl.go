package nast

// controlCode handles a C0 control byte (or DEL) received in ground
// state, grounded on nast.c's tcontrolcode.
func (t *Terminal) controlCode(b byte) {
	switch b {
	case '\a': // BEL
		t.bell.Ring()
	case '\b': // BS
		if t.cursor.X > 0 {
			t.cursor.X--
			t.cursor.State &^= StateWrapNext
		}
	case '\t': // HT
		t.tabForward(1)
	case '\n', '\v', '\f': // LF, VT, FF all do line-feed
		t.lineFeed()
		if t.modeFlags.Has(ModeCRLF) {
			t.cursor.X = 0
		}
		t.cursor.State &^= StateWrapNext
	case '\r': // CR
		t.cursor.X = 0
		t.cursor.State &^= StateWrapNext
	case 0x0E, 0x0F: // SO / SI: shift to G1 / G0
		if b == 0x0E {
			t.activeCharset = 1
		} else {
			t.activeCharset = 0
		}
	default:
		// SUB, CAN, ENQ, NUL, XON, XOFF, DEL: no observable effect on the
		// grid; recognized-but-inert per the accepted C0 control set.
	}
}

// printRune writes one glyph to the screen, implementing the spec's
// wrap-next / insert-mode / wide-glyph rules.
func (t *Terminal) printRune(r rune) {
	if t.charsetTranslate[t.activeCharset] == CharsetLineDrawing {
		r = translateLineDrawing(r)
	}
	r, width := printableGlyph(r)
	if width == 0 {
		return // zero-width combining mark: dropped, not merged
	}

	if t.cursor.State.has(StateWrapNext) {
		t.markSoftWrap()
		rl := t.curRLine()
		id := rl.LineID()
		t.lineFeedWithID(id)
		if dst := t.curRLine(); dst != nil {
			dst.SetLineID(id)
		}
		t.cursor.X = 0
		t.cursor.State &^= StateWrapNext
	}

	rl := t.curRLine()
	if rl == nil {
		return
	}
	if t.cursor.X >= rl.Width() {
		t.cursor.X = rl.Width() - width
	}
	g := t.cursor.Attr
	g.Char = r
	if width == 2 {
		g.Flags.Set(FlagWide)
	}
	if t.modeFlags.Has(ModeInsert) {
		rl.Insert(t.cursor.X, g)
	} else {
		rl.Set(t.cursor.X, g)
	}
	if width == 2 && t.cursor.X+1 < rl.Width() {
		spacer := t.cursor.Attr
		spacer.Char = ' '
		spacer.Flags.Set(FlagWDummy)
		rl.Set(t.cursor.X+1, spacer)
	}

	if t.cursor.X == t.col-width {
		t.cursor.State.Set(StateWrapNext)
	} else {
		t.cursor.X += width
	}
}

func (s *CursorState) Set(bit CursorState)   { *s |= bit }
func (s *CursorState) Clear(bit CursorState) { *s &^= bit }

// markSoftWrap flags the last cell of the current line as a soft wrap.
func (t *Terminal) markSoftWrap() {
	rl := t.curRLine()
	if rl == nil || rl.Width() == 0 {
		return
	}
	g := rl.Get(rl.Width() - 1)
	g.Flags.Set(FlagSoftWrap)
	rl.Set(rl.Width()-1, g)
}

// curRLine returns the RLine the cursor currently addresses.
func (t *Terminal) curRLine() *RLine {
	return t.scr().Get(t.term2abs(t.cursor.Y))
}

// lineFeedWithID performs one line feed. If the cursor is not at the
// bottom of the scroll region it simply moves down; otherwise it scrolls,
// tagging the appended/shifted line with continueID if nonzero (soft-wrap
// continuation) or a freshly minted id otherwise (hard newline).
func (t *Terminal) lineFeedWithID(continueID uint64) {
	if t.cursor.Y != t.scrollBot {
		if t.cursor.Y < t.row-1 {
			t.cursor.Y++
		}
		return
	}
	id := continueID
	if id == 0 {
		id = t.scr().NextLineID()
	}
	if t.scrollTop == 0 && t.scrollBot == t.row-1 {
		t.scr().Allocate(id, t.cursor.Attr.Fg, t.cursor.Attr.Bg)
	} else {
		lo := t.term2abs(t.scrollTop)
		hi := t.term2abs(t.scrollBot)
		t.scr().shiftRegionUpWithID(lo, hi, id, t.cursor.Attr.Fg, t.cursor.Attr.Bg)
	}
	t.cursor.Y = t.scrollBot
	if t.scrollOffset > 0 {
		max := t.scr().Len() - t.row
		t.scrollOffset++
		if t.scrollOffset > max {
			t.scrollOffset = max
		}
	}
}

func (t *Terminal) lineFeed() { t.lineFeedWithID(0) }

// scrollUp scrolls the current scroll region up by n lines (oldest line
// of the region discarded or, for the full-viewport region, pushed into
// history).
func (t *Terminal) scrollUp(n int) {
	for i := 0; i < n; i++ {
		t.lineFeedAtBottomForced()
	}
}

// lineFeedAtBottomForced performs exactly the bottom-of-region scroll step
// of lineFeedWithID regardless of cursor position, used by scrollUp (CSI S).
func (t *Terminal) lineFeedAtBottomForced() {
	id := t.scr().NextLineID()
	if t.scrollTop == 0 && t.scrollBot == t.row-1 {
		t.scr().Allocate(id, t.cursor.Attr.Fg, t.cursor.Attr.Bg)
	} else {
		lo := t.term2abs(t.scrollTop)
		hi := t.term2abs(t.scrollBot)
		t.scr().shiftRegionUpWithID(lo, hi, id, t.cursor.Attr.Fg, t.cursor.Attr.Bg)
	}
}

// scrollDown scrolls the current scroll region down by n lines (xterm
// CSI T / RI at the region's top boundary).
func (t *Terminal) scrollDown(n int) {
	lo := t.term2abs(t.scrollTop)
	hi := t.term2abs(t.scrollBot)
	for i := 0; i < n; i++ {
		t.scr().shiftRegionDown(lo, hi, t.cursor.Attr.Fg, t.cursor.Attr.Bg)
	}
}

// index is ESC D (IND): line feed without carriage return.
func (t *Terminal) index() {
	t.lineFeed()
}

// reverseIndex is ESC M (RI): move up, scrolling the region down at its
// top boundary.
func (t *Terminal) reverseIndex() {
	if t.cursor.Y != t.scrollTop {
		if t.cursor.Y > 0 {
			t.cursor.Y--
		}
		return
	}
	t.scrollDown(1)
}

// nextLineEsc is ESC E (NEL): index plus carriage return.
func (t *Terminal) nextLineEsc() {
	t.lineFeed()
	t.cursor.X = 0
}

// horizontalTabSet is ESC H (HTS): sets a tab stop at the cursor column.
func (t *Terminal) horizontalTabSet() {
	if t.cursor.X >= 0 && t.cursor.X < len(t.tabs) {
		t.tabs[t.cursor.X] = true
	}
}

func (t *Terminal) tabForward(n int) {
	for ; n > 0; n-- {
		x := t.cursor.X + 1
		for x < t.col && !t.tabs[x] {
			x++
		}
		if x >= t.col {
			x = t.col - 1
		}
		t.cursor.X = x
	}
}

func (t *Terminal) tabBackward(n int) {
	for ; n > 0; n-- {
		x := t.cursor.X - 1
		for x > 0 && !t.tabs[x] {
			x--
		}
		if x < 0 {
			x = 0
		}
		t.cursor.X = x
	}
}

// identifyTerminal replies to DA/DECID with the fixed vtiden string.
func (t *Terminal) identifyTerminal() {
	t.reply("\x1b[?64;1;2;6;9;15;16;17;18;21;22;28c")
}

// reply queues bytes destined for the pty (query responses, DSR, OSC
// answers) and immediately tries to drain them, matching nast.c routing
// every outbound write through the writable queue rather than straight to
// the fd so a blocked pty never loses a response.
func (t *Terminal) reply(s string) {
	t.queue.Append([]byte(s))
	t.Flush()
}

// saveCursorLocked is ESC 7 (DECSC): save the full cursor for the active
// screen.
func (t *Terminal) saveCursorLocked() {
	saved := SavedCursor{
		X: t.cursor.X, Y: t.cursor.Y, Attr: t.cursor.Attr, State: t.cursor.State,
		Charsets: t.charsetTranslate, ActiveCharset: t.activeCharset, valid: true,
	}
	if t.activeScreen == ScreenAlt {
		t.savedAlt = saved
	} else {
		t.savedMain = saved
	}
}

// restoreCursorLocked is ESC 8 (DECRC): restore from the active screen's
// saved slot.
func (t *Terminal) restoreCursorLocked() {
	var saved SavedCursor
	if t.activeScreen == ScreenAlt {
		saved = t.savedAlt
	} else {
		saved = t.savedMain
	}
	if !saved.valid {
		return
	}
	t.cursor.X, t.cursor.Y = saved.X, saved.Y
	t.cursor.Attr, t.cursor.State = saved.Attr, saved.State
	t.charsetTranslate = saved.Charsets
	t.activeCharset = saved.ActiveCharset
	t.clampCursor()
}

func (t *Terminal) clampCursor() {
	if t.cursor.X < 0 {
		t.cursor.X = 0
	}
	if t.cursor.X > t.col-1 {
		t.cursor.X = t.col - 1
	}
	if t.cursor.Y < 0 {
		t.cursor.Y = 0
	}
	if t.cursor.Y > t.row-1 {
		t.cursor.Y = t.row - 1
	}
}

// setKeypadApplicationMode is ESC = (DECKPAM).
func (t *Terminal) setKeypadApplicationMode() { t.modeFlags.set(ModeAppKeypad) }

// unsetKeypadApplicationMode is ESC > (DECKPNM).
func (t *Terminal) unsetKeypadApplicationMode() { t.modeFlags.clear(ModeAppKeypad) }

// configureCharset sets the translation table for one of G0..G3.
func (t *Terminal) configureCharset(idx CharsetIndex, set Charset) {
	t.charsetTranslate[idx] = set
}

// decaln is ESC # 8 (DECALN): fill the screen with 'E'. The original's
// tsetchar is reachable only from here; per the open question, it writes
// single-width glyphs and ignores wide-character rules.
func (t *Terminal) decaln() {
	for y := 0; y < t.row; y++ {
		idx := t.term2abs(y)
		rl := t.scr().Get(idx)
		if rl == nil {
			continue
		}
		for x := 0; x < rl.Width(); x++ {
			rl.Set(x, Glyph{Char: 'E', Fg: DefaultForeground, Bg: DefaultBackground})
		}
	}
}

// setUTF8Mode is ESC % @ / ESC % G.
func (t *Terminal) setUTF8Mode(on bool) { t.modeFlags.apply(ModeUTF8, on) }

// fullReset is ESC c (RIS): hard reset to power-on defaults.
func (t *Terminal) fullReset() {
	t.activeScreen = ScreenMain
	t.mainScreen.Reset()
	t.altScreen.Reset()
	t.cursor = newCursor()
	t.savedMain, t.savedAlt = SavedCursor{}, SavedCursor{}
	t.scrollTop, t.scrollBot = 0, t.row-1
	t.modeFlags = defaultModeFlags
	t.charsetTranslate = [4]Charset{}
	t.activeCharset = 0
	t.tabs = newTabStops(t.col, 8)
	t.scrollOffset = 0
	t.title, t.titleStack = "", nil
	t.hyperlinkID, t.hyperlinkURI = "", ""
	for i := 0; i < t.row; i++ {
		t.mainScreen.Allocate(t.mainScreen.NextLineID(), t.cursor.Attr.Fg, t.cursor.Attr.Bg)
	}
	for i := 0; i < t.row; i++ {
		t.altScreen.Allocate(t.altScreen.NextLineID(), t.cursor.Attr.Fg, t.cursor.Attr.Bg)
	}
}
