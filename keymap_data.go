package nast

import "fmt"

// keyTable is the full key -> rule-list map. ASCII keys 0x00-0x1F and
// 0x7F plus named keys are transliterated directly from keymap.c; the
// printable range 0x20-0x7E is built by letterRules/punctRules/digitRules
// (plus a literal entry for space), which collapse the source's
// near-identical literal entries into the repeating shapes it uses (see
// DESIGN.md for the punctuation ctrl-code exceptions, such as '/' and '?',
// that punctRules does not reproduce).
var keyTable = buildKeyTable()

func mok2Format(n int) string { return fmt.Sprintf("\x1b[27;%%d;%d~", n) }

// letterRules covers the "ALTIFY|MOK2 / ctrl-code / default" shape used
// by every key from '@' through '~' except the digit row.
func letterRules(c byte) []Rule {
	return []Rule{
		{Altify: true, Mok2: mustBeOn, Action: mods(mok2Format(int(c)))},
		{Ctrl: mustBeOn, Action: simple(string(rune(c & 0x1F)))},
		{Action: simple(string(rune(c)))},
	}
}

// punctRules covers the "ALTIFY-as-plain-default / ctrl+mok1 / mok2 /
// default" shape used by most non-digit punctuation in 0x21-0x3F.
func punctRules(c byte) []Rule {
	f := mok2Format(int(c))
	return []Rule{
		{Altify: true, Ctrl: mustBeOff, Alt: mustBeOff, Meta: mustBeOff, Action: simple(string(rune(c)))},
		{Ctrl: mustBeOn, Mok1: mustBeOn, Action: mods(f)},
		{Mok2: mustBeOn, Action: mods(f)},
		{Action: simple(string(rune(c)))},
	}
}

// digitCtrl holds the non-formulaic ctrl-codes the top digit row sends,
// a historical xterm artifact (ctrl+3 is ESC, ctrl+7 is US, etc.) that
// does not follow the letters' c&0x1F rule.
var digitCtrl = map[byte]byte{
	'2': 0x00, '3': 0x1b, '4': 0x1c, '5': 0x1d, '6': 0x1e, '7': 0x1f, '8': 0x7f,
}

func digitRules(c byte) []Rule {
	f := mok2Format(int(c))
	rules := []Rule{
		{Altify: true, Mok2: mustBeOn, Action: mods(f)},
	}
	if code, ok := digitCtrl[c]; ok {
		rules = append(rules, Rule{Ctrl: mustBeOn, Action: simple(string(rune(code)))})
	} else {
		rules = append(rules, Rule{Mok1: mustBeOn, Action: mods(f)})
	}
	rules = append(rules, Rule{Action: simple(string(rune(c)))})
	return rules
}

func buildKeyTable() map[Key][]Rule {
	t := map[Key][]Rule{}

	for c := 0x00; c <= 0x1F; c++ {
		t[Key(c)] = []Rule{{Action: simple(string(rune(c)))}}
	}

	t[Key(0x20)] = []Rule{
		{Altify: true, Mok2: mustBeOn, Action: mods(mok2Format(0x20))},
		{Ctrl: mustBeOn, Action: simple("\x00")},
		{Action: simple(" ")},
	}
	for c := 0x21; c <= 0x2F; c++ {
		t[Key(c)] = punctRules(byte(c))
	}
	for c := 0x30; c <= 0x39; c++ {
		t[Key(c)] = digitRules(byte(c))
	}
	for c := 0x3A; c <= 0x3F; c++ {
		t[Key(c)] = punctRules(byte(c))
	}
	for c := 0x40; c <= 0x7E; c++ {
		t[Key(c)] = letterRules(byte(c))
	}
	t[Key(0x7F)] = []Rule{
		{Altify: true, Mok2: mustBeOn, Action: mods(mok2Format(127))},
		{Ctrl: mustBeOn, Action: simple("\x1f")},
		{Action: simple("\x7f")},
	}

	nm := Rule{Ctrl: mustBeOff, Shift: mustBeOff, Alt: mustBeOff, Meta: mustBeOff}
	withCurs := func(r Rule, curs dimState) Rule { r.Curs = curs; return r }

	t[KeyHome] = []Rule{
		withCurs(func() Rule { r := nm; r.Action = simple("\x1b[H"); return r }(), mustBeOff),
		func() Rule { r := nm; r.Action = simple("\x1bOH"); return r }(),
		{Action: mods("\x1b[1;%dH")},
	}
	t[KeyEnd] = []Rule{
		withCurs(func() Rule { r := nm; r.Action = simple("\x1b[F"); return r }(), mustBeOff),
		func() Rule { r := nm; r.Action = simple("\x1bOF"); return r }(),
		{Action: mods("\x1b[1;%dF")},
	}
	t[KeyInsert] = []Rule{
		func() Rule { r := nm; r.Action = simple("\x1b[2~"); return r }(),
		{Action: mods("\x1b[2;%d~")},
	}
	t[KeyDelete] = []Rule{
		func() Rule { r := nm; r.Action = simple("\x1b[3~"); return r }(),
		{Action: mods("\x1b[3;%d~")},
	}
	t[KeyPgUp] = []Rule{
		{Shift: mustBeOn, Action: shiftPgUp()},
		func() Rule { r := nm; r.Action = simple("\x1b[5~"); return r }(),
		{Action: mods("\x1b[5;%d~")},
	}
	t[KeyPgDn] = []Rule{
		{Shift: mustBeOn, Action: shiftPgDn()},
		func() Rule { r := nm; r.Action = simple("\x1b[6~"); return r }(),
		{Action: mods("\x1b[6;%d~")},
	}
	t[0x08] = []Rule{ // Backspace reuses the C0 BS keycode slot
		{Altify: true, Mok2: mustBeOn, Action: mods(mok2Format(8))},
		{Ctrl: mustBeOn, Action: simple("\x7f")},
		{Action: simple("\b")},
	}
	t[0x0D] = []Rule{ // Enter / Return
		{Mok1: mustBeOn, Action: mods("\x1b[27;%d;13~")},
		{Alt: mustBeOff, Action: simple("\r")},
		{Action: simple("")},
	}
	t[0x09] = []Rule{ // Tab
		{Shift: mustBeOn, Action: simple("\x1b[Z")},
		{Alt: mustBeOn, Action: simple("\xc2\x89")},
		{Mok1: mustBeOn, Action: mods("\x1b[27;%d;9~")},
		{Action: simple("\t")},
	}
	t[0x1B] = []Rule{{Action: simple("\x1b")}} // Esc

	t[KeyUp] = arrowRules("\x1b[A", "\x1bOA", "\x1b[1;%dA")
	t[KeyDown] = arrowRules("\x1b[B", "\x1bOB", "\x1b[1;%dB")
	t[KeyRight] = arrowRules("\x1b[C", "\x1bOC", "\x1b[1;%dC")
	t[KeyLeft] = arrowRules("\x1b[D", "\x1bOD", "\x1b[1;%dD")

	kp := func(noModApp, format, plain string) []Rule {
		r1 := Rule{Kpad: mustBeOn, Ctrl: mustBeOff, Shift: mustBeOff, Alt: mustBeOff, Meta: mustBeOff, Action: simple(noModApp)}
		return []Rule{r1, {Kpad: mustBeOn, Action: mods(format)}, {Action: simple(plain)}}
	}
	t[KeyKP0] = kp("\x1bOp", "\x1bO%dp", "0")
	t[KeyKP1] = kp("\x1bOq", "\x1bO%dq", "1")
	t[KeyKP2] = kp("\x1bOr", "\x1bO%dr", "2")
	t[KeyKP3] = kp("\x1bOs", "\x1bO%ds", "3")
	t[KeyKP4] = kp("\x1bOt", "\x1bO%dt", "4")
	t[KeyKP5] = kp("\x1bOu", "\x1bO%du", "5")
	t[KeyKP6] = kp("\x1bOv", "\x1bO%dv", "6")
	t[KeyKP7] = kp("\x1bOw", "\x1bO%dw", "7")
	t[KeyKP8] = kp("\x1bOx", "\x1bO%dx", "8")
	t[KeyKP9] = kp("\x1bOy", "\x1bO%dy", "9")
	t[KeyKPMultiply] = kp("\x1bOj", "\x1bO%dj", "*")
	t[KeyKPSubtract] = kp("\x1bOm", "\x1bO%dm", "-")
	t[KeyKPAdd] = kp("\x1bOk", "\x1bO%dk", "+")
	t[KeyKPDecimal] = kp("\x1bOn", "\x1bO%dn", ".")
	t[KeyKPDivide] = kp("\x1bOo", "\x1bO%do", "/")
	t[KeyKPEnter] = kp("\x1bOM", "\x1bO%dM", "\r")

	t[KeyF1] = []Rule{func() Rule { r := nm; r.Action = simple("\x1bOP"); return r }(), {Action: mods("\x1b[1;%dP")}}
	t[KeyF(2)] = []Rule{func() Rule { r := nm; r.Action = simple("\x1bOQ"); return r }(), {Action: mods("\x1b[1;%dQ")}}
	t[KeyF(3)] = []Rule{func() Rule { r := nm; r.Action = simple("\x1bOR"); return r }(), {Action: mods("\x1b[1;%dR")}}
	t[KeyF(4)] = []Rule{func() Rule { r := nm; r.Action = simple("\x1bOS"); return r }(), {Action: mods("\x1b[1;%dS")}}
	t[KeyF(5)] = []Rule{func() Rule { r := nm; r.Action = simple("\x1b[15~"); return r }(), {Action: mods("\x1b[15;%d~")}}
	t[KeyF(6)] = []Rule{func() Rule { r := nm; r.Action = simple("\x1b[17~"); return r }(), {Action: mods("\x1b[17;%d~")}}
	t[KeyF(7)] = []Rule{func() Rule { r := nm; r.Action = simple("\x1b[18~"); return r }(), {Action: mods("\x1b[18;%d~")}}
	t[KeyF(8)] = []Rule{func() Rule { r := nm; r.Action = simple("\x1b[19~"); return r }(), {Action: mods("\x1b[19;%d~")}}
	t[KeyF(9)] = []Rule{func() Rule { r := nm; r.Action = simple("\x1b[20~"); return r }(), {Action: mods("\x1b[20;%d~")}}
	t[KeyF(10)] = []Rule{func() Rule { r := nm; r.Action = simple("\x1b[21~"); return r }(), {Action: mods("\x1b[21;%d~")}}
	t[KeyF(11)] = []Rule{func() Rule { r := nm; r.Action = simple("\x1b[23~"); return r }(), {Action: mods("\x1b[23;%d~")}}
	t[KeyF(12)] = []Rule{func() Rule { r := nm; r.Action = simple("\x1b[24~"); return r }(), {Action: mods("\x1b[24;%d~")}}

	// F13-F63: xterm's modifier-baked-in literal escapes, matched by no
	// other rule (pressing F13 is indistinguishable at the OS level from
	// Shift+F1, so the host is expected to report it as KeyF(13) directly
	// rather than KeyF1 with Shift set).
	literalF := []string{
		"\x1b[1;2P", "\x1b[1;2Q", "\x1b[1;2R", "\x1b[1;2S",
		"\x1b[15;2~", "\x1b[17;2~", "\x1b[18;2~", "\x1b[19;2~", "\x1b[20;2~", "\x1b[21;2~", "\x1b[23;2~", "\x1b[24;2~",
		"\x1b[1;5P", "\x1b[1;5Q", "\x1b[1;5R", "\x1b[1;5S",
		"\x1b[15;5~", "\x1b[17;5~", "\x1b[18;5~", "\x1b[19;5~", "\x1b[20;5~", "\x1b[21;5~", "\x1b[23;5~", "\x1b[24;5~",
		"\x1b[1;6P", "\x1b[1;6Q", "\x1b[1;6R", "\x1b[1;6S",
		"\x1b[15;6~", "\x1b[17;6~", "\x1b[18;6~", "\x1b[19;6~", "\x1b[20;6~", "\x1b[21;6~", "\x1b[23;6~", "\x1b[24;6~",
		"\x1b[1;3P", "\x1b[1;3Q", "\x1b[1;3R", "\x1b[1;3S",
		"\x1b[15;3~", "\x1b[17;3~", "\x1b[18;3~", "\x1b[19;3~", "\x1b[20;3~", "\x1b[21;3~", "\x1b[23;3~", "\x1b[24;3~",
		"\x1b[1;4P", "\x1b[1;4Q", "\x1b[1;4R",
	}
	for i, seq := range literalF {
		t[KeyF(13+i)] = []Rule{{Action: simple(seq)}}
	}

	return t
}

func arrowRules(appOff, appOn, modFormat string) []Rule {
	base := Rule{Ctrl: mustBeOff, Shift: mustBeOff, Alt: mustBeOff, Meta: mustBeOff}
	r1 := base
	r1.Curs = mustBeOff
	r1.Action = simple(appOff)
	r2 := base
	r2.Action = simple(appOn)
	return []Rule{r1, r2, {Action: mods(modFormat)}}
}
