package nast

import (
	"strings"

	"github.com/rs/zerolog"
)

const defaultHistoryLimit = 9999

// Terminal ties the Screen and Parser together: cursor, modes, scroll
// region, and every CSI/OSC/ESC command handler. Exactly one of
// mainScreen/altScreen is "active", selected by activeScreen rather than
// a raw pointer so screen swap is an O(1) tag flip with no aliasing
// hazard during reflow.
type Terminal struct {
	row, col int

	mainScreen, altScreen *Screen
	activeScreen          ActiveScreen

	scrollOffset int

	cursor    Cursor
	savedMain SavedCursor
	savedAlt  SavedCursor

	scrollTop, scrollBot int

	modeFlags ModeFlag

	charsetTranslate [4]Charset
	activeCharset    int

	tabs []bool

	modifyOtherKeys int // 0 (off), 1, or 2

	historyLimit int

	parser *Parser
	queue  *WritableQueue

	selection Selection

	title      string
	titleStack []string

	hyperlinkID, hyperlinkURI string

	response  ResponseProvider
	bell      BellProvider
	titleProv TitleProvider
	apc       APCProvider
	pm        PMProvider
	sos       SOSProvider
	clipboard ClipboardProvider

	onScrollbackEvict func(*RLine)

	log zerolog.Logger
}

// Option configures a Terminal at construction time.
type Option func(*Terminal)

// WithSize sets the initial geometry (rows, cols). Default 24x80.
func WithSize(rows, cols int) Option {
	return func(t *Terminal) { t.row, t.col = rows, cols }
}

// WithResponse sets where DA/DSR/OSC and similar query replies are
// written. Default discards them.
func WithResponse(r ResponseProvider) Option {
	return func(t *Terminal) { t.response = r }
}

// WithBell sets the BEL handler. Default ignores bells.
func WithBell(b BellProvider) Option {
	return func(t *Terminal) { t.bell = b }
}

// WithTitle sets the window-title handler (OSC 0/1/2). Default ignores.
func WithTitle(tp TitleProvider) Option {
	return func(t *Terminal) { t.titleProv = tp }
}

// WithAPC sets the Application Program Command handler.
func WithAPC(a APCProvider) Option {
	return func(t *Terminal) { t.apc = a }
}

// WithPM sets the Privacy Message handler.
func WithPM(p PMProvider) Option {
	return func(t *Terminal) { t.pm = p }
}

// WithSOS sets the Start-Of-String handler.
func WithSOS(s SOSProvider) Option {
	return func(t *Terminal) { t.sos = s }
}

// WithClipboard sets the OSC 52 clipboard read/write handler.
func WithClipboard(c ClipboardProvider) Option {
	return func(t *Terminal) { t.clipboard = c }
}

// WithHistoryLimit sets the main screen's scrollback capacity
// (history_limit in the spec; default 9999, giving cap = 9998).
func WithHistoryLimit(n int) Option {
	return func(t *Terminal) { t.historyLimit = n }
}

// WithScrollbackEvictHook installs a callback invoked with an RLine a
// moment before it is evicted from the main screen's ring, letting a host
// archive history beyond the in-memory ring to disk or another store.
func WithScrollbackEvictHook(fn func(*RLine)) Option {
	return func(t *Terminal) { t.onScrollbackEvict = fn }
}

// WithLogger overrides the zerolog.Logger used for parse-recoverable and
// mode-ignored diagnostics (default: a disabled logger).
func WithLogger(l zerolog.Logger) Option {
	return func(t *Terminal) { t.log = l }
}

// New constructs a Terminal. Defaults: 24x80, history limit 9999, UTF-8
// and autowrap and cursor-visible on, all providers no-ops.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		row: 24, col: 80,
		historyLimit: defaultHistoryLimit,
		response:     NoopResponse{},
		bell:         NoopBell{},
		titleProv:    NoopTitle{},
		apc:          NoopAPC{},
		pm:           NoopPM{},
		sos:          NoopSOS{},
		clipboard:    NoopClipboard{},
		log:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.mainScreen = NewScreen(t.historyLimit-1, t.col)
	t.altScreen = NewScreen(t.row, t.col)
	t.mainScreen.SetOnEvict(func(rl *RLine) {
		if t.onScrollbackEvict != nil {
			t.onScrollbackEvict(rl)
		}
	})

	t.cursor = newCursor()
	t.scrollTop, t.scrollBot = 0, t.row-1
	t.modeFlags = defaultModeFlags
	t.tabs = newTabStops(t.col, 8)
	t.parser = NewParser(t)
	t.queue = NewWritableQueue()

	// Seed both screens with row blank lines so indices are always valid.
	for i := 0; i < t.row; i++ {
		t.mainScreen.Allocate(t.mainScreen.NextLineID(), t.cursor.Attr.Fg, t.cursor.Attr.Bg)
	}
	for i := 0; i < t.row; i++ {
		t.altScreen.Allocate(t.altScreen.NextLineID(), t.cursor.Attr.Fg, t.cursor.Attr.Bg)
	}

	return t
}

func newTabStops(cols, every int) []bool {
	tabs := make([]bool, cols)
	for i := every; i < cols; i += every {
		tabs[i] = true
	}
	return tabs
}

// scr resolves the active screen from the ActiveScreen tag.
func (t *Terminal) scr() *Screen {
	if t.activeScreen == ScreenAlt {
		return t.altScreen
	}
	return t.mainScreen
}

// Coordinate conversions, central to every row addressing operation.
func (t *Terminal) abs2term(i int) int { return i - (t.scr().Len() - t.row) }
func (t *Terminal) term2abs(y int) int { return y + (t.scr().Len() - t.row) }
func (t *Terminal) view2abs(i int) int { return i + (t.scr().Len() - t.row - t.scrollOffset) }

// Write implements io.Writer, feeding data through the Parser.
func (t *Terminal) Write(data []byte) (int, error) {
	return t.parser.Write(data)
}

// WriteString is a convenience wrapper around Write.
func (t *Terminal) WriteString(s string) (int, error) {
	return t.Write([]byte(s))
}

// Rows reports the terminal's row count.
func (t *Terminal) Rows() int { return t.row }

// Cols reports the terminal's column count.
func (t *Terminal) Cols() int { return t.col }

// CursorPos returns the cursor's terminal-relative (row, col).
func (t *Terminal) CursorPos() (row, col int) { return t.cursor.Y, t.cursor.X }

// CursorVisible reports DECTCEM state.
func (t *Terminal) CursorVisible() bool { return t.cursor.Visible }

// CursorStyle reports the current cursor rendering style.
func (t *Terminal) CursorStyle() CursorStyle { return t.cursor.Style }

// Title reports the current window title.
func (t *Terminal) Title() string { return t.title }

// HasMode reports whether the given persistent mode bit is set.
func (t *Terminal) HasMode(m ModeFlag) bool { return t.modeFlags.Has(m) }

// IsAltScreen reports whether the alternate screen is currently active.
func (t *Terminal) IsAltScreen() bool { return t.activeScreen == ScreenAlt }

// ScrollOffset reports how many lines the viewport has scrolled back.
func (t *Terminal) ScrollOffset() int { return t.scrollOffset }

// Cell returns the glyph at terminal-relative (row, col), respecting the
// current scroll offset into history.
func (t *Terminal) Cell(row, col int) Glyph {
	idx := t.view2abs(row)
	rl := t.scr().Get(idx)
	if rl == nil || col < 0 || col >= rl.Width() {
		return blankGlyph(DefaultForeground, DefaultBackground)
	}
	return rl.Get(col)
}

// LineContent returns the trimmed text of the terminal-relative row.
func (t *Terminal) LineContent(row int) string {
	idx := t.view2abs(row)
	rl := t.scr().Get(idx)
	if rl == nil {
		return ""
	}
	return rl.text()
}

// String renders the visible screen as text, trimming trailing blank rows.
func (t *Terminal) String() string {
	lines := make([]string, t.row)
	for i := 0; i < t.row; i++ {
		lines[i] = t.LineContent(i)
	}
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	return strings.Join(lines[:end], "\n")
}

// ScrollUpView scrolls the viewport back into history by n lines.
func (t *Terminal) ScrollUpView(n int) {
	max := t.scr().Len() - t.row
	if max < 0 {
		max = 0
	}
	t.scrollOffset += n
	if t.scrollOffset > max {
		t.scrollOffset = max
	}
	if t.scrollOffset < 0 {
		t.scrollOffset = 0
	}
}

// ScrollDownView scrolls the viewport forward toward the live screen.
func (t *Terminal) ScrollDownView(n int) {
	t.ScrollUpView(-n)
}

// Resize changes geometry, delegating the cell migration to Reflow.
func (t *Terminal) Resize(rows, cols int) {
	if rows == t.row && cols == t.col {
		return
	}
	reflow(t, rows, cols)
}
