package nast

// CursorStyle determines how the cursor is rendered (DECSCUSR).
type CursorStyle int

const (
	CursorStyleBlinkingBlock CursorStyle = iota
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// CursorState is a bitset of cursor flags independent of position.
type CursorState uint8

const (
	// StateWrapNext marks that the next printed glyph must first wrap to
	// a new line: set when a glyph was printed into the last column.
	StateWrapNext CursorState = 1 << iota
	// StateOrigin marks that row coordinates are relative to the top of
	// the scroll region rather than the screen (DECOM).
	StateOrigin
)

func (s CursorState) has(bit CursorState) bool { return s&bit != 0 }

// Cursor is the terminal's write position and current style.
type Cursor struct {
	X, Y  int
	Attr  Glyph // style-only template (Char is ignored) applied to new glyphs
	State CursorState
	Style CursorStyle

	Visible bool
}

func newCursor() Cursor {
	return Cursor{
		Attr:    attrTemplate(blankGlyph(DefaultForeground, DefaultBackground)),
		Style:   CursorStyleBlinkingBlock,
		Visible: true,
	}
}

// SavedCursor is the full cursor snapshot saved by DECSC / mode 1049 entry
// and restored by DECRC / mode 1049 exit. Two independent slots are kept,
// one per screen (altscreen-is-active selects which).
type SavedCursor struct {
	X, Y          int
	Attr          Glyph
	State         CursorState
	Charsets      [4]Charset
	ActiveCharset int
	valid         bool
}

func (c *Cursor) save() SavedCursor {
	return SavedCursor{X: c.X, Y: c.Y, Attr: c.Attr, State: c.State, valid: true}
}

func (c *Cursor) restore(s SavedCursor) {
	c.X, c.Y, c.Attr, c.State = s.X, s.Y, s.Attr, s.State
}

// Charset selects a character-set translation table for one of G0..G3.
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetLineDrawing
)

// CharsetIndex selects one of the four translation-table slots.
type CharsetIndex int

const (
	CharsetG0 CharsetIndex = iota
	CharsetG1
	CharsetG2
	CharsetG3
)

// translateLineDrawing maps the DEC Special Graphics charset onto Unicode
// box-drawing codepoints. Any rune outside the table passes through.
func translateLineDrawing(r rune) rune {
	switch r {
	case 'j':
		return '┘'
	case 'k':
		return '┐'
	case 'l':
		return '┌'
	case 'm':
		return '└'
	case 'n':
		return '┼'
	case 'q':
		return '─'
	case 't':
		return '├'
	case 'u':
		return '┤'
	case 'v':
		return '┴'
	case 'w':
		return '┬'
	case 'x':
		return '│'
	default:
		return r
	}
}
