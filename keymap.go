package nast

import "fmt"

// Key names one keyboard key: the ASCII codepoints it can produce (for
// printable/control keys) plus named keys with no ASCII representation.
type Key int

const (
	// Named keys start past the ASCII range (0x00-0x7F) so Key can address
	// both an ASCII byte and a named key with a single int.
	KeyHome Key = 0x80 + iota
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPgUp
	KeyPgDn
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyBegin // keypad 5 without numlock
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPDecimal
	KeyKPDivide
	KeyKPMultiply
	KeyKPSubtract
	KeyKPAdd
	KeyKPEnter
	KeyKPEquals
	KeyF1
)

// KeyF returns the key for Fn (F1..F63), i.e. KeyF1+n-1.
func KeyF(n int) Key { return KeyF1 + Key(n-1) }

// KeyInput is one key-press event as seen by the matcher: the key plus
// every modifier/mode dimension a rule can select on.
type KeyInput struct {
	Key Key

	Shift, Alt, Ctrl, Meta bool
	AppCursor, AppKeypad   bool
	MOK1, MOK2             bool
}

func (in KeyInput) modifierParam() int {
	p := 1
	if in.Shift {
		p += 1
	}
	if in.Alt {
		p += 2
	}
	if in.Ctrl {
		p += 4
	}
	if in.Meta {
		p += 8
	}
	return p
}

// dimState is a rule's stance on one modifier/mode dimension: don't care,
// or require it off/on. Mirrors keymap.h's match_X/X_value bit pairs
// without needing raw bitmasks in Go.
type dimState int

const (
	dontCare dimState = iota
	mustBeOff
	mustBeOn
)

func (d dimState) matches(on bool) bool {
	switch d {
	case mustBeOff:
		return !on
	case mustBeOn:
		return on
	default:
		return true
	}
}

// ActionKind distinguishes the handful of things a matched rule can do.
type ActionKind int

const (
	ActionSimple ActionKind = iota
	ActionMods
	ActionShiftPgUp
	ActionShiftPgDn
	ActionShiftInsert
)

// Action is what a matched rule produces: a literal byte string, a
// format string taking the single xterm modifier parameter, or one of
// the no-bytes scrolling/paste side effects.
type Action struct {
	Kind   ActionKind
	Bytes  string
	Format string
}

func simple(bytes string) Action   { return Action{Kind: ActionSimple, Bytes: bytes} }
func mods(format string) Action    { return Action{Kind: ActionMods, Format: format} }
func shiftPgUp() Action            { return Action{Kind: ActionShiftPgUp} }
func shiftPgDn() Action            { return Action{Kind: ActionShiftPgDn} }
func shiftInsert() Action          { return Action{Kind: ActionShiftInsert} }

// Rule is one entry of a key's ordered rule list: a mask over every
// modifier/mode dimension, plus the action to take when all required
// dimensions match. Altify, legal only on a key's first rule, implements
// the spec's ALTIFY reduction (see matchKey).
type Rule struct {
	Ctrl, Shift, Alt, Meta dimState
	Curs, Kpad             dimState
	Mok1, Mok2             dimState
	Altify                 bool
	Action                 Action
}

func (r Rule) matches(in KeyInput) bool {
	return r.Ctrl.matches(in.Ctrl) &&
		r.Shift.matches(in.Shift) &&
		r.Alt.matches(in.Alt) &&
		r.Meta.matches(in.Meta) &&
		r.Curs.matches(in.AppCursor) &&
		r.Kpad.matches(in.AppKeypad) &&
		r.Mok1.matches(in.MOK1) &&
		r.Mok2.matches(in.MOK2)
}

// ResolvedAction is the outcome of a successful key lookup: either a byte
// string to send to the pty, or a view-scrolling/paste side effect for
// the host to perform with no bytes emitted.
type ResolvedAction struct {
	Kind  ActionKind
	Bytes []byte
}

// EncodeKey matches in against key's rule list and returns what to do.
// ok is false if no rule matched (the input is silently dropped per
// spec 4.4).
func (t *Terminal) EncodeKey(key Key, in KeyInput) (ResolvedAction, bool) {
	in.Key = key
	return matchKey(key, in, -1)
}

// matchKey implements the ALTIFY-aware matching algorithm. forcedP, when
// >= 0, overrides the modifier parameter a matched mods() action
// computes - used for the ALTIFY re-match, which must use P computed
// from the *original* (pre-reduction) modifiers.
func matchKey(key Key, in KeyInput, forcedP int) (ResolvedAction, bool) {
	rules := keyTable[key]
	for i, r := range rules {
		if i == 0 && r.Altify && in.Alt {
			p := in.modifierParam()
			reduced := in
			reduced.Alt, reduced.MOK1, reduced.MOK2 = false, false, false
			inner, ok := matchKey(key, reduced, p)
			if !ok {
				return ResolvedAction{}, false
			}
			out := append([]byte{0x1B}, inner.Bytes...)
			return ResolvedAction{Kind: ActionSimple, Bytes: out}, true
		}
		if !r.matches(in) {
			continue
		}
		p := forcedP
		if p < 0 {
			p = in.modifierParam()
		}
		switch r.Action.Kind {
		case ActionSimple:
			return ResolvedAction{Kind: ActionSimple, Bytes: []byte(r.Action.Bytes)}, true
		case ActionMods:
			return ResolvedAction{Kind: ActionSimple, Bytes: []byte(fmt.Sprintf(r.Action.Format, p))}, true
		default:
			return ResolvedAction{Kind: r.Action.Kind}, true
		}
	}
	return ResolvedAction{}, false
}

// HandleKey is the host-facing entry point: it looks up key, writes any
// produced bytes to the outbound queue, and performs ShiftPgUp/PgDn/
// Insert side effects directly.
func (t *Terminal) HandleKey(key Key, in KeyInput) {
	in.AppCursor = t.modeFlags.Has(ModeAppCursor)
	in.AppKeypad = t.modeFlags.Has(ModeAppKeypad)
	in.MOK1 = t.modifyOtherKeys == 1
	in.MOK2 = t.modifyOtherKeys == 2

	action, ok := t.EncodeKey(key, in)
	if !ok {
		return
	}
	switch action.Kind {
	case ActionShiftPgUp:
		t.ScrollUpView(t.row / 2)
	case ActionShiftPgDn:
		t.ScrollDownView(t.row / 2)
	case ActionShiftInsert:
		data := t.clipboard.Read('p')
		t.PasteText(data)
	default:
		t.queue.Append(action.Bytes)
		t.Flush()
	}
}

// PasteText writes data to the pty, wrapping it in bracketed-paste
// markers when that mode is enabled. It does not pass through the key
// encoder: the post-transform applies to pasted text only, per spec 4.4.
func (t *Terminal) PasteText(data string) {
	if t.modeFlags.Has(ModeBracketedPaste) {
		t.queue.Append([]byte("\x1b[200~"))
		t.queue.Append([]byte(data))
		t.queue.Append([]byte("\x1b[201~"))
	} else {
		t.queue.Append([]byte(data))
	}
	t.Flush()
}
