package nast

import "strconv"

// dispatchCSI executes one fully parsed CSI sequence. params has already
// had overflowing values clamped to -1 by the parser; the p helper applies the
// per-command default when a parameter is absent or zero, per ECMA-48.
func (t *Terminal) dispatchCSI(private byte, params []int, intermediate byte, final byte) {
	p := func(i, def int) int {
		if i >= len(params) || params[i] <= 0 {
			return def
		}
		return params[i]
	}
	raw := func(i, def int) int {
		if i >= len(params) {
			return def
		}
		return params[i]
	}

	switch final {
	case '@': // ICH: insert n blank chars at cursor
		t.insertBlank(p(0, 1))
	case 'A': // CUU
		t.moveCursor(0, -p(0, 1))
	case 'B': // CUD
		t.moveCursor(0, p(0, 1))
	case 'C': // CUF
		t.moveCursor(p(0, 1), 0)
	case 'D': // CUB
		t.moveCursor(-p(0, 1), 0)
	case 'E': // CNL: cursor down n, col 0
		t.moveCursor(0, p(0, 1))
		t.cursor.X = 0
	case 'F': // CPL: cursor up n, col 0
		t.moveCursor(0, -p(0, 1))
		t.cursor.X = 0
	case 'G', '`': // CHA / HPA
		t.setCursorCol(p(0, 1) - 1)
	case 'H', 'f': // CUP / HVP
		t.setCursorPos(p(0, 1)-1, p(1, 1)-1)
	case 'I': // CHT
		t.tabForward(p(0, 1))
	case 'J': // ED
		t.eraseDisplay(raw(0, 0))
	case 'K': // EL
		t.eraseLine(raw(0, 0))
	case 'L': // IL: insert n blank lines at cursor row
		t.insertLines(p(0, 1))
	case 'M': // DL: delete n lines at cursor row
		t.deleteLines(p(0, 1))
	case 'P': // DCH: delete n chars at cursor
		t.deleteChars(p(0, 1))
	case 'S': // SU: scroll whole region up n (not cursor-relative)
		t.scrollUp(p(0, 1))
	case 'T': // SD: scroll whole region down n
		t.scrollDown(p(0, 1))
	case 'X': // ECH: erase n chars at cursor without shifting
		t.eraseChars(p(0, 1))
	case 'Z': // CBT
		t.tabBackward(p(0, 1))
	case 'a': // HPR: relative CHA
		t.moveCursor(p(0, 1), 0)
	case 'c': // DA
		if private == 0 {
			t.identifyTerminal()
		}
	case 'd': // VPA
		t.setCursorRow(p(0, 1) - 1)
	case 'e': // VPR
		t.moveCursor(0, p(0, 1))
	case 'g': // TBC
		t.tabClear(raw(0, 0))
	case 'h':
		t.setModes(private, params, true)
	case 'l':
		t.setModes(private, params, false)
	case 'm':
		switch private {
		case 0:
			t.handleSGR(params)
		case '>':
			t.setModifyOtherKeys(raw(0, 0), raw(1, -1))
		}
	case 'n': // DSR
		t.deviceStatusReport(raw(0, 0), private)
	case 'q':
		if intermediate == ' ' {
			t.setCursorStyle(raw(0, 0))
		}
	case 'r': // DECSTBM
		t.setScrollRegion(raw(0, 0), raw(1, 0))
	case 's': // save cursor position (ANSI.SYS); no private-mode meaning here
		if private == 0 {
			t.saveCursorLocked()
		}
	case 't':
		// Window manipulation (resize/report/iconify): out of scope for a
		// headless core; acknowledged and ignored.
	case 'u': // restore cursor position
		if private == 0 {
			t.restoreCursorLocked()
		}
	default:
		t.log.Debug().Str("final", string(final)).Msg("unrecognized CSI final")
	}
}

func (t *Terminal) moveCursor(dx, dy int) {
	y := t.cursor.Y + dy
	if t.cursor.State.has(StateOrigin) {
		y -= t.scrollTop
	}
	t.setCursorPos(y, t.cursor.X+dx)
}

func (t *Terminal) setCursorCol(x int) {
	y := t.cursor.Y
	if t.cursor.State.has(StateOrigin) {
		y -= t.scrollTop
	}
	t.setCursorPos(y, x)
}

func (t *Terminal) setCursorRow(y int) {
	t.setCursorPos(y, t.cursor.X)
}

// setCursorPos moves the cursor, honoring DECOM (origin mode): while it is
// set, y is relative to the scroll region top, as CUP/HVP/VPA address it.
// The relative movers above convert the absolute cursor row first.
func (t *Terminal) setCursorPos(y, x int) {
	top, bot := 0, t.row-1
	if t.cursor.State.has(StateOrigin) {
		top, bot = t.scrollTop, t.scrollBot
		y += top
	}
	if y < top {
		y = top
	}
	if y > bot {
		y = bot
	}
	if x < 0 {
		x = 0
	}
	if x > t.col-1 {
		x = t.col - 1
	}
	t.cursor.Y, t.cursor.X = y, x
	t.cursor.State &^= StateWrapNext
}

func (t *Terminal) insertBlank(n int) {
	rl := t.curRLine()
	if rl == nil {
		return
	}
	for i := 0; i < n; i++ {
		rl.Insert(t.cursor.X, blankGlyph(t.cursor.Attr.Fg, t.cursor.Attr.Bg))
	}
}

func (t *Terminal) eraseChars(n int) {
	rl := t.curRLine()
	if rl == nil {
		return
	}
	hi := t.cursor.X + n
	if hi > rl.Width() {
		hi = rl.Width()
	}
	rl.Clear(t.cursor.X, hi, t.cursor.Attr.Fg, t.cursor.Attr.Bg)
}

func (t *Terminal) deleteChars(n int) {
	rl := t.curRLine()
	if rl == nil {
		return
	}
	w := rl.Width()
	for i := 0; i < n; i++ {
		for x := t.cursor.X; x < w-1; x++ {
			rl.Set(x, rl.Get(x+1))
		}
		rl.Set(w-1, blankGlyph(t.cursor.Attr.Fg, t.cursor.Attr.Bg))
	}
}

func (t *Terminal) eraseLine(mode int) {
	rl := t.curRLine()
	if rl == nil {
		return
	}
	switch mode {
	case 0:
		rl.Clear(t.cursor.X, rl.Width(), t.cursor.Attr.Fg, t.cursor.Attr.Bg)
	case 1:
		rl.Clear(0, t.cursor.X+1, t.cursor.Attr.Fg, t.cursor.Attr.Bg)
	case 2:
		rl.Clear(0, rl.Width(), t.cursor.Attr.Fg, t.cursor.Attr.Bg)
	}
}

func (t *Terminal) eraseDisplay(mode int) {
	switch mode {
	case 0:
		t.eraseLine(0)
		for y := t.cursor.Y + 1; y < t.row; y++ {
			t.clearRow(y)
		}
	case 1:
		t.eraseLine(1)
		for y := 0; y < t.cursor.Y; y++ {
			t.clearRow(y)
		}
	case 2, 3:
		for y := 0; y < t.row; y++ {
			t.clearRow(y)
		}
	}
}

func (t *Terminal) clearRow(y int) {
	idx := t.term2abs(y)
	rl := t.scr().Get(idx)
	if rl == nil {
		return
	}
	rl.Clear(0, rl.Width(), t.cursor.Attr.Fg, t.cursor.Attr.Bg)
}

// insertLines is IL: shift rows [cursor.Y, scrollBot] down within the
// scroll region, discarding the bottom row, as if DECSTBM scrolled down
// anchored at the cursor instead of at scrollTop.
func (t *Terminal) insertLines(n int) {
	if t.cursor.Y < t.scrollTop || t.cursor.Y > t.scrollBot {
		return
	}
	lo := t.term2abs(t.cursor.Y)
	hi := t.term2abs(t.scrollBot)
	for i := 0; i < n; i++ {
		t.scr().shiftRegionDown(lo, hi, t.cursor.Attr.Fg, t.cursor.Attr.Bg)
	}
}

// deleteLines is DL: shift rows [cursor.Y, scrollBot] up, pulling in
// blank lines at the bottom of the region.
func (t *Terminal) deleteLines(n int) {
	if t.cursor.Y < t.scrollTop || t.cursor.Y > t.scrollBot {
		return
	}
	lo := t.term2abs(t.cursor.Y)
	hi := t.term2abs(t.scrollBot)
	for i := 0; i < n; i++ {
		t.scr().shiftRegionUpWithID(lo, hi, 0, t.cursor.Attr.Fg, t.cursor.Attr.Bg)
	}
}

func (t *Terminal) tabClear(mode int) {
	switch mode {
	case 0:
		if t.cursor.X < len(t.tabs) {
			t.tabs[t.cursor.X] = false
		}
	case 3:
		for i := range t.tabs {
			t.tabs[i] = false
		}
	}
}

func (t *Terminal) setScrollRegion(top, bot int) {
	if top == 0 {
		top = 1
	}
	if bot == 0 {
		bot = t.row
	}
	top--
	bot--
	if top < 0 {
		top = 0
	}
	if bot > t.row-1 {
		bot = t.row - 1
	}
	if top >= bot {
		top, bot = 0, t.row-1
	}
	t.scrollTop, t.scrollBot = top, bot
	t.setCursorPos(0, 0)
}

// setModifyOtherKeys is CSI > 4 ; Pv m: Pv selects modifyOtherKeys level
// 0 (off), 1, or 2. Resource 4 is the only one this core tracks.
func (t *Terminal) setModifyOtherKeys(resource, value int) {
	if resource != 4 {
		return
	}
	if value < 0 || value > 2 {
		value = 0
	}
	t.modifyOtherKeys = value
}

func (t *Terminal) setCursorStyle(n int) {
	if n >= int(CursorStyleBlinkingBlock) && n <= int(CursorStyleSteadyBar) {
		t.cursor.Style = CursorStyle(n)
		return
	}
	t.cursor.Style = CursorStyleBlinkingBlock
}

func (t *Terminal) deviceStatusReport(mode int, private byte) {
	switch mode {
	case 5:
		t.reply("\x1b[0n")
	case 6:
		y, x := t.cursor.Y, t.cursor.X
		if t.cursor.State.has(StateOrigin) {
			y -= t.scrollTop
		}
		t.reply(csiCursorReport(y+1, x+1))
	}
}

func csiCursorReport(row, col int) string {
	return "\x1b[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "R"
}
