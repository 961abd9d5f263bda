package nast

// reflowAnchor tracks one cursor that must migrate across a resize: its
// position in the old geometry, and (once computed) its position in the
// new one.
type reflowAnchor struct {
	screen ActiveScreen
	absY   int // logical index into the old screen's ring
	x      int
	wrap   bool
	valid  bool

	matched   bool
	newAbsY   int
	newX      int
	newWrap   bool
	dropped   bool // target line was trimmed away (saved-cursor anchors only)
}

// reflow rebuilds both screens at the new geometry per spec 4.7: logical
// lines are re-wrapped from scratch, cursor anchors ride along with the
// glyph they pointed at, and tab stops are resized preserving existing
// stops. Called by Terminal.Resize; t.row/t.col are still the OLD values
// on entry and are updated at the end.
func reflow(t *Terminal, newRows, newCols int) {
	oldRow := t.row

	anchors := collectAnchors(t, oldRow)

	newMainCap := t.historyLimit - 1
	newAltCap := newRows

	newMain := reflowOneScreen(t.mainScreen, oldRow, newCols, newRows, newMainCap, anchorsFor(anchors, ScreenMain))
	newAlt := reflowOneScreen(t.altScreen, oldRow, newCols, newRows, newAltCap, anchorsFor(anchors, ScreenAlt))

	t.mainScreen = newMain
	t.mainScreen.SetOnEvict(func(rl *RLine) {
		if t.onScrollbackEvict != nil {
			t.onScrollbackEvict(rl)
		}
	})
	t.altScreen = newAlt

	t.row, t.col = newRows, newCols
	applyAnchors(t, anchors)

	t.tabs = resizeTabStops(t.tabs, newCols, 8)

	if t.scrollTop != 0 || t.scrollBot != oldRow-1 {
		// A restricted scroll region does not itself reflow; clamp it into
		// the new row count rather than trying to re-derive its meaning.
		if t.scrollBot > newRows-1 {
			t.scrollBot = newRows - 1
		}
		if t.scrollTop > t.scrollBot {
			t.scrollTop = 0
		}
	} else {
		t.scrollTop, t.scrollBot = 0, newRows-1
	}
}

func collectAnchors(t *Terminal, oldRow int) []*reflowAnchor {
	var anchors []*reflowAnchor

	cur := &reflowAnchor{
		screen: t.activeScreen,
		absY:   t.term2abs(t.cursor.Y),
		x:      t.cursor.X,
		wrap:   t.cursor.State.has(StateWrapNext),
		valid:  true,
	}
	anchors = append(anchors, cur)

	if t.savedMain.valid {
		anchors = append(anchors, &reflowAnchor{
			screen: ScreenMain,
			absY:   t.mainScreen.Len() - oldRow + t.savedMain.Y,
			x:      t.savedMain.X,
			wrap:   t.savedMain.State.has(StateWrapNext),
			valid:  true,
		})
	}
	if t.savedAlt.valid {
		anchors = append(anchors, &reflowAnchor{
			screen: ScreenAlt,
			absY:   t.altScreen.Len() - oldRow + t.savedAlt.Y,
			x:      t.savedAlt.X,
			wrap:   t.savedAlt.State.has(StateWrapNext),
			valid:  true,
		})
	}
	return anchors
}

func anchorsFor(all []*reflowAnchor, screen ActiveScreen) []*reflowAnchor {
	var out []*reflowAnchor
	for _, a := range all {
		if a.screen == screen {
			out = append(out, a)
		}
	}
	return out
}

// applyAnchors writes the computed new positions back onto the Terminal's
// live cursor and saved-cursor slots, after reflowOneScreen has populated
// each anchor's newAbsY/newX/newWrap/dropped.
func applyAnchors(t *Terminal, anchors []*reflowAnchor) {
	for _, a := range anchors {
		switch {
		case a == anchors[0]:
			if a.dropped || !a.valid {
				t.cursor.Y, t.cursor.X = 0, 0
				t.cursor.State &^= StateWrapNext
				continue
			}
			t.cursor.Y = t.abs2termFor(a.screen, a.newAbsY)
			t.cursor.X = a.newX
			t.cursor.State.apply(StateWrapNext, a.newWrap)
		case a.screen == ScreenMain && t.savedMain.valid:
			if a.dropped {
				t.savedMain = SavedCursor{}
				continue
			}
			t.savedMain.Y = t.abs2termFor(a.screen, a.newAbsY)
			t.savedMain.X = a.newX
			t.savedMain.State = boolState(a.newWrap)
		case a.screen == ScreenAlt && t.savedAlt.valid:
			if a.dropped {
				t.savedAlt = SavedCursor{}
				continue
			}
			t.savedAlt.Y = t.abs2termFor(a.screen, a.newAbsY)
			t.savedAlt.X = a.newX
			t.savedAlt.State = boolState(a.newWrap)
		}
	}
}

func boolState(wrap bool) CursorState {
	if wrap {
		return StateWrapNext
	}
	return 0
}

// abs2termFor mirrors Terminal.abs2term but against whichever screen the
// anchor names, since the live screen may differ from the anchor's.
func (t *Terminal) abs2termFor(which ActiveScreen, absY int) int {
	scr := t.mainScreen
	if which == ScreenAlt {
		scr = t.altScreen
	}
	y := absY - (scr.Len() - t.row)
	if y < 0 {
		y = 0
	}
	if y > t.row-1 {
		y = t.row - 1
	}
	return y
}

// reflowOneScreen rebuilds a single screen's ring at the new geometry,
// resolving anchors against it as it copies glyphs.
func reflowOneScreen(old *Screen, oldRow, newCols, newRows, newCap int, anchors []*reflowAnchor) *Screen {
	var lines []*RLine
	var curLine *RLine
	curX := 0
	haveLine := false
	var lastID uint64

	flush := func() {
		if curLine != nil {
			lines = append(lines, curLine)
		}
		curLine = nil
		curX = 0
	}
	startLine := func(id uint64) {
		flush()
		curLine = newRLine(newCols, id, DefaultForeground, DefaultBackground)
	}
	resolveFallback := func(oldAbsY int) {
		for _, a := range anchors {
			if a.valid && !a.matched && a.absY == oldAbsY {
				a.matched = true
				a.newAbsY = len(lines)
				a.newX = curX
				a.newWrap = curX >= newCols
				if a.newWrap {
					a.newX = newCols - 1
				}
			}
		}
	}

	for i := 0; i < old.Len(); i++ {
		rl := old.Get(i)
		if rl == nil || rl.LineID() == 0 {
			continue
		}
		if !haveLine || rl.LineID() != lastID {
			startLine(rl.LineID())
			lastID = rl.LineID()
			haveLine = true
		}
		for col := 0; col < rl.Width(); col++ {
			g := rl.Get(col)
			if g.Flags.Has(FlagWDummy) {
				continue
			}
			matchCol := func() {
				for _, a := range anchors {
					if a.valid && !a.matched && a.absY == i && a.x == col {
						a.matched = true
						if a.wrap {
							if curX+1 < newCols {
								a.newX = curX + 1
								a.newWrap = false
							} else {
								a.newX = newCols - 1
								a.newWrap = true
							}
						} else {
							a.newX = curX
							a.newWrap = curX >= newCols
						}
						a.newAbsY = len(lines)
					}
				}
			}
			if g.Flags.Has(FlagNoRender) {
				matchCol()
				continue
			}
			if curX >= newCols {
				last := curLine.Get(newCols - 1)
				last.Flags.Set(FlagSoftWrap)
				curLine.Set(newCols-1, last)
				startLine(rl.LineID())
			}
			g.Flags.Clear(FlagSoftWrap)
			curLine.Set(curX, g)
			matchCol()
			curX++
		}
		resolveFallback(i)
	}
	flush()

	newScreen := NewScreen(newCap, newCols)
	idCounter := old.lineIDCounter

	start := 0
	if len(lines) > newCap {
		drop := len(lines) - newCap
		// Never drop past the live cursor anchor's line; saved-cursor
		// anchors caught in the drop are invalidated instead.
		for _, a := range anchors {
			if a.matched && a.newAbsY < drop {
				a.dropped = true
			}
		}
		for _, a := range anchors {
			if a.matched && !a.dropped {
				a.newAbsY -= drop
			}
		}
		start = drop
		lines = lines[start:]
	}

	for len(lines) < newRows {
		lines = append(lines, newRLine(newCols, 0, DefaultForeground, DefaultBackground))
	}

	physical := make([]*RLine, newCap+1)
	copy(physical, lines)
	newScreen.replaceWith(physical, len(lines), newCols, idCounter)
	return newScreen
}

// resizeTabStops preserves stops below min(old,new) width and extends by
// fixed intervals beyond the old width, per spec 4.7 step 9.
func resizeTabStops(old []bool, newCols, every int) []bool {
	tabs := make([]bool, newCols)
	keep := len(old)
	if newCols < keep {
		keep = newCols
	}
	copy(tabs, old[:keep])
	for i := len(old); i < newCols; i += every {
		if i >= 0 {
			tabs[i] = true
		}
	}
	return tabs
}
