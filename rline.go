package nast

// RLine is a rendered line: a fixed-width array of Glyphs plus a logical
// line identity. Consecutive RLines sharing a non-zero lineID form one
// soft-wrapped logical line. Width does not change once an RLine is
// allocated; reflow always builds fresh RLines rather than resizing one.
type RLine struct {
	glyphs []Glyph
	lineID uint64
	dirty  bool
}

// newRLine allocates an RLine of the given width, filled with blank glyphs
// using fg/bg, tagged with lineID. lineID == 0 marks a placeholder line
// with no logical line assigned yet.
func newRLine(width int, lineID uint64, fg, bg Color) *RLine {
	rl := &RLine{glyphs: make([]Glyph, width), lineID: lineID, dirty: true}
	blank := blankGlyph(fg, bg)
	for i := range rl.glyphs {
		rl.glyphs[i] = blank
	}
	return rl
}

// Width reports the cell count of the line.
func (rl *RLine) Width() int { return len(rl.glyphs) }

// LineID reports the logical line identity, or 0 for a placeholder.
func (rl *RLine) LineID() uint64 { return rl.lineID }

// SetLineID reassigns the logical line identity, used to join the row a
// soft wrap moved onto to the preceding row's logical line.
func (rl *RLine) SetLineID(id uint64) { rl.lineID = id }

// Get returns the glyph at idx. idx must be in [0, Width()).
func (rl *RLine) Get(idx int) Glyph { return rl.glyphs[idx] }

// Set overwrites the glyph at idx and marks the line dirty.
func (rl *RLine) Set(idx int, g Glyph) {
	rl.glyphs[idx] = g
	rl.dirty = true
}

// Insert shifts glyphs at [idx, Width()) right by one, dropping the last
// cell, and writes g at idx. Used by insert-mode printing and ICH.
func (rl *RLine) Insert(idx int, g Glyph) {
	copy(rl.glyphs[idx+1:], rl.glyphs[idx:len(rl.glyphs)-1])
	rl.glyphs[idx] = g
	rl.dirty = true
}

// Clear sets every glyph in [lo, hi) to a blank glyph with fg/bg.
func (rl *RLine) Clear(lo, hi int, fg, bg Color) {
	if lo < 0 {
		lo = 0
	}
	if hi > len(rl.glyphs) {
		hi = len(rl.glyphs)
	}
	blank := blankGlyph(fg, bg)
	for i := lo; i < hi; i++ {
		rl.glyphs[i] = blank
	}
	rl.dirty = true
}

// Dirty reports whether any glyph has mutated since the last ClearDirty.
func (rl *RLine) Dirty() bool { return rl.dirty }

// MarkDirty forces the dirty flag, e.g. after an external mutation via Get.
func (rl *RLine) MarkDirty() { rl.dirty = true }

// ClearDirty resets the dirty flag after a render pass has consumed it.
func (rl *RLine) ClearDirty() { rl.dirty = false }

// text joins the line's glyphs into a string, skipping wdummy cells and
// trailing norender space cells, the way a logical-line text extraction
// (selection, search, Stringer) wants it.
func (rl *RLine) text() string {
	end := len(rl.glyphs)
	for end > 0 {
		g := rl.glyphs[end-1]
		if g.Flags.Has(FlagNoRender) && g.Char == ' ' {
			end--
			continue
		}
		break
	}
	runes := make([]rune, 0, end)
	for i := 0; i < end; i++ {
		g := rl.glyphs[i]
		if g.Flags.Has(FlagWDummy) {
			continue
		}
		runes = append(runes, g.Char)
	}
	return string(runes)
}
