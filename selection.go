package nast

// SelectionMode is the selection lifecycle: idle (nothing selected),
// empty (anchored but zero-width), or ready (a non-empty range).
type SelectionMode int

const (
	SelectionIdle SelectionMode = iota
	SelectionEmpty
	SelectionReady
)

// SelectionType distinguishes a normal stream selection from a
// column-aligned rectangular one.
type SelectionType int

const (
	SelectionRegular SelectionType = iota
	SelectionRectangular
)

// SelectionSnap is the unit a click-drag snaps to.
type SelectionSnap int

const (
	SnapNone SelectionSnap = iota
	SnapWord
	SnapLine
)

// Position is an absolute (Screen-index, column) coordinate.
type Position struct {
	X, Y int
}

func (p Position) before(o Position) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

// Selection is the current selection region, tracked in absolute Screen
// coordinates so it survives scrolling within the scroll region. It is
// invalidated when its anchor screen stops being the active one.
type Selection struct {
	Mode SelectionMode
	Type SelectionType
	Snap SelectionSnap

	origStart, origEnd Position
	Start, End         Position

	onAltScreen bool
}

// Begin anchors a new selection at abs position p on the screen that is
// active right now.
func (t *Terminal) Begin(x, y int, typ SelectionType, snap SelectionSnap) {
	abs := t.term2abs(y)
	p := Position{X: x, Y: abs}
	t.selection = Selection{
		Mode: SelectionEmpty, Type: typ, Snap: snap,
		origStart: p, origEnd: p, Start: p, End: p,
		onAltScreen: t.activeScreen == ScreenAlt,
	}
}

// Extend moves the selection's free end to (x, y) (terminal-relative),
// normalizing Start/End and promoting Mode to Ready once non-empty.
func (t *Terminal) Extend(x, y int) {
	if t.selection.Mode == SelectionIdle {
		return
	}
	abs := t.term2abs(y)
	t.selection.origEnd = Position{X: x, Y: abs}
	start, end := t.selection.origStart, t.selection.origEnd
	if end.before(start) {
		start, end = end, start
	}
	t.selection.Start, t.selection.End = start, end
	if start != end {
		t.selection.Mode = SelectionReady
	}
}

// ClearSelection discards the current selection.
func (t *Terminal) ClearSelection() {
	t.selection = Selection{}
}

// HasSelection reports whether a non-empty selection exists.
func (t *Terminal) HasSelection() bool {
	return t.selection.Mode == SelectionReady
}

// invalidateSelectionIfWrongScreen drops the selection when the screen it
// was made on is no longer active (switching into/out of the alt screen).
func (t *Terminal) invalidateSelectionIfWrongScreen() {
	if t.selection.Mode == SelectionIdle {
		return
	}
	if t.selection.onAltScreen != (t.activeScreen == ScreenAlt) {
		t.ClearSelection()
	}
}

// SelectedText joins the glyphs within the current selection, row by row,
// skipping wdummy cells, newline-separated between rows.
func (t *Terminal) SelectedText() string {
	if !t.HasSelection() {
		return ""
	}
	scr := t.scr()
	var out []rune
	sel := t.selection
	// Start/End rows are already logical Screen indices (from term2abs).
	lo := sel.Start.Y
	hi := sel.End.Y
	for i := lo; i <= hi; i++ {
		rl := scr.Get(i)
		if rl == nil {
			continue
		}
		colLo, colHi := 0, rl.Width()
		if sel.Type == SelectionRectangular || i == lo {
			colLo = sel.Start.X
		}
		if sel.Type == SelectionRectangular || i == hi {
			colHi = sel.End.X + 1
		}
		if colHi > rl.Width() {
			colHi = rl.Width()
		}
		for c := colLo; c < colHi; c++ {
			g := rl.Get(c)
			if g.Flags.Has(FlagWDummy) {
				continue
			}
			out = append(out, g.Char)
		}
		if i != hi {
			out = append(out, '\n')
		}
	}
	return string(out)
}
