package nast

// Screen is a ring buffer of RLines sharing a logical-line identity chain.
// Physical storage holds cap+1 slots so that a full ring is distinguishable
// from an empty one without a separate flag. Logical index i maps to
// physical slot (start+i) mod (cap+1).
type Screen struct {
	rlines []*RLine
	cap    int
	start  int
	len    int
	cols   int

	lineIDCounter uint64

	// onEvict, when set, is called with the RLine a moment before it is
	// dropped from the ring (e.g. to archive it to an external scrollback
	// store). It is never called for Alt screens, which have no history.
	onEvict func(*RLine)
}

// NewScreen allocates a ring with capacity cap (the number of RLines it can
// hold beyond always discarding nothing) and column width cols. cap is the
// maximum logical length (history_limit-1 for the main screen, row for the
// alt screen, which has no scrollback).
func NewScreen(cap, cols int) *Screen {
	return &Screen{
		rlines: make([]*RLine, cap+1),
		cap:    cap,
		cols:   cols,
	}
}

// Cap reports the maximum number of RLines the screen retains.
func (s *Screen) Cap() int { return s.cap }

// Len reports the number of live RLines.
func (s *Screen) Len() int { return s.len }

// Cols reports the column width RLines are allocated with.
func (s *Screen) Cols() int { return s.cols }

func (s *Screen) physical(i int) int {
	return (s.start + i) % len(s.rlines)
}

// Get returns the RLine at logical index i, or nil if out of range.
func (s *Screen) Get(i int) *RLine {
	if i < 0 || i >= s.len {
		return nil
	}
	return s.rlines[s.physical(i)]
}

// NextLineID returns a fresh, monotonically increasing logical line
// identity, for use by callers that allocate new logical lines.
func (s *Screen) NextLineID() uint64 {
	s.lineIDCounter++
	return s.lineIDCounter
}

// Allocate appends a new RLine tagged with lineID, filled using fg/bg. If
// the ring is full, the oldest RLine is evicted first (onEvict is invoked,
// start advances, len decrements) before the append. Returns the new RLine.
func (s *Screen) Allocate(lineID uint64, fg, bg Color) *RLine {
	if s.len > s.cap {
		panic("nast: screen ring invariant violated")
	}
	if s.len == s.cap {
		// Ring already at capacity: evict before appending, per spec 4.3.
		s.evictOldest()
	}
	rl := newRLine(s.cols, lineID, fg, bg)
	idx := s.physical(s.len)
	s.rlines[idx] = rl
	s.len++
	return rl
}

func (s *Screen) evictOldest() {
	old := s.rlines[s.start]
	if old != nil && s.onEvict != nil {
		s.onEvict(old)
	}
	s.rlines[s.start] = nil
	s.start = (s.start + 1) % len(s.rlines)
	s.len--
}

// Close frees (in the GC sense, detaches) all remaining RLines, invoking
// onEvict for each as the spec's "full Screen destruction" lifecycle path.
func (s *Screen) Close() {
	for s.len > 0 {
		s.evictOldest()
	}
}

// SetOnEvict installs the eviction hook (see onEvict).
func (s *Screen) SetOnEvict(fn func(*RLine)) { s.onEvict = fn }

// Reset drops every RLine without invoking onEvict, as used by a hard
// terminal reset (RIS).
func (s *Screen) Reset() {
	for i := range s.rlines {
		s.rlines[i] = nil
	}
	s.start, s.len = 0, 0
}

// replaceWith swaps in a freshly built set of rlines (used by Reflow),
// resetting start to 0. The slice is used directly, must be len(cap+1).
func (s *Screen) replaceWith(rlines []*RLine, length int, cols int, idCounter uint64) {
	s.rlines = rlines
	s.start = 0
	s.len = length
	s.cols = cols
	s.lineIDCounter = idCounter
}

// shiftRegionUpWithID shifts the logical rows (lo, hi] one position toward
// lo, dropping the line at lo and appending a fresh RLine tagged lineID at
// hi. Used for scrolling a restricted scroll region, which (unlike a
// full-viewport scroll) never grows history: the displaced line is simply
// discarded, onEvict is not called.
func (s *Screen) shiftRegionUpWithID(lo, hi int, lineID uint64, fg, bg Color) *RLine {
	for i := lo; i < hi; i++ {
		s.rlines[s.physical(i)] = s.rlines[s.physical(i+1)]
	}
	blank := newRLine(s.cols, lineID, fg, bg)
	s.rlines[s.physical(hi)] = blank
	return blank
}

// shiftRegionDown is the inverse of shiftRegionUpWithID: rows [lo, hi)
// shift toward hi, and a fresh blank RLine is inserted at lo.
func (s *Screen) shiftRegionDown(lo, hi int, fg, bg Color) *RLine {
	for i := hi; i > lo; i-- {
		s.rlines[s.physical(i)] = s.rlines[s.physical(i-1)]
	}
	blank := newRLine(s.cols, 0, fg, bg)
	s.rlines[s.physical(lo)] = blank
	return blank
}
