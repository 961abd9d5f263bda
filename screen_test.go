package nast

import "testing"

func TestScreenAllocateAndGet(t *testing.T) {
	s := NewScreen(3, 10)
	id := s.NextLineID()
	rl := s.Allocate(id, DefaultForeground, DefaultBackground)
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
	if s.Get(0) != rl {
		t.Fatalf("Get(0) did not return the allocated line")
	}
	if s.Get(1) != nil {
		t.Fatalf("Get(1) should be out of range")
	}
}

func TestScreenEvictsOldestWhenFull(t *testing.T) {
	s := NewScreen(2, 4) // cap 2: holds at most 2 lines
	var evicted []*RLine
	s.SetOnEvict(func(rl *RLine) { evicted = append(evicted, rl) })

	first := s.Allocate(s.NextLineID(), DefaultForeground, DefaultBackground)
	second := s.Allocate(s.NextLineID(), DefaultForeground, DefaultBackground)
	third := s.Allocate(s.NextLineID(), DefaultForeground, DefaultBackground)

	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2 (cap enforced)", s.Len())
	}
	if len(evicted) != 1 || evicted[0] != first {
		t.Fatalf("expected first line evicted exactly once")
	}
	if s.Get(0) != second || s.Get(1) != third {
		t.Fatalf("ring contents after eviction are wrong")
	}
}

func TestScreenLineIDsAreMonotonic(t *testing.T) {
	s := NewScreen(10, 4)
	a := s.NextLineID()
	b := s.NextLineID()
	if b <= a {
		t.Fatalf("line ids not monotonic: %d then %d", a, b)
	}
}

func TestScreenWrapsPhysicalIndexAcrossEviction(t *testing.T) {
	s := NewScreen(2, 4)
	for i := 0; i < 5; i++ {
		s.Allocate(s.NextLineID(), DefaultForeground, DefaultBackground)
	}
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	// Both logical indices must still resolve to live lines after the
	// physical slot index has wrapped several times.
	if s.Get(0) == nil || s.Get(1) == nil {
		t.Fatalf("expected two live lines after repeated eviction")
	}
}
