package nast

import "testing"

func TestRLineSetAndText(t *testing.T) {
	rl := newRLine(5, 1, DefaultForeground, DefaultBackground)
	for i, r := range "Hi" {
		rl.Set(i, Glyph{Char: r, Fg: DefaultForeground, Bg: DefaultBackground})
	}
	if got := rl.text(); got != "Hi" {
		t.Fatalf("text() = %q, want %q", got, "Hi")
	}
}

func TestRLineInsertShiftsRight(t *testing.T) {
	rl := newRLine(4, 1, DefaultForeground, DefaultBackground)
	for i, r := range "abc" {
		rl.Set(i, Glyph{Char: r})
	}
	rl.Insert(1, Glyph{Char: 'X'})
	want := "aXbc"
	var got string
	for i := 0; i < 4; i++ {
		got += string(rl.Get(i).Char)
	}
	if got != want {
		t.Fatalf("after insert got %q, want %q", got, want)
	}
}

func TestRLineClearUsesNoRenderBlank(t *testing.T) {
	rl := newRLine(3, 1, DefaultForeground, DefaultBackground)
	rl.Set(0, Glyph{Char: 'x'})
	rl.Clear(0, 3, DefaultForeground, DefaultBackground)
	for i := 0; i < 3; i++ {
		g := rl.Get(i)
		if g.Char != ' ' || !g.Flags.Has(FlagNoRender) {
			t.Fatalf("cell %d not blanked: %+v", i, g)
		}
	}
}

func TestRLineDirtyTracking(t *testing.T) {
	rl := newRLine(2, 1, DefaultForeground, DefaultBackground)
	rl.ClearDirty()
	if rl.Dirty() {
		t.Fatalf("expected clean after ClearDirty")
	}
	rl.Set(0, Glyph{Char: 'a'})
	if !rl.Dirty() {
		t.Fatalf("expected dirty after Set")
	}
}
