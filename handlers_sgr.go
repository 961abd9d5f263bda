package nast

// handleSGR applies one or more SGR (CSI ... m) attribute codes to the
// cursor's style template, consuming extended-color sub-parameters
// (38/48 ; 5 ; n and 38/48 ; 2 ; r ; g ; b) as they appear.
func (t *Terminal) handleSGR(params []int) {
	if len(params) == 0 {
		t.resetSGR()
		return
	}
	for i := 0; i < len(params); i++ {
		n := params[i]
		switch {
		case n == 0:
			t.resetSGR()
		case n == 1:
			t.cursor.Attr.Flags.Set(FlagBold)
		case n == 2:
			t.cursor.Attr.Flags.Set(FlagFaint)
		case n == 3:
			t.cursor.Attr.Flags.Set(FlagItalic)
		case n == 4:
			t.cursor.Attr.Flags.Set(FlagUnderline)
		case n == 5 || n == 6:
			t.cursor.Attr.Flags.Set(FlagBlink)
		case n == 7:
			t.cursor.Attr.Flags.Set(FlagReverse)
		case n == 8:
			t.cursor.Attr.Flags.Set(FlagInvisible)
		case n == 9:
			t.cursor.Attr.Flags.Set(FlagStruck)
		case n == 22:
			t.cursor.Attr.Flags.Clear(FlagBold)
			t.cursor.Attr.Flags.Clear(FlagFaint)
		case n == 23:
			t.cursor.Attr.Flags.Clear(FlagItalic)
		case n == 24:
			t.cursor.Attr.Flags.Clear(FlagUnderline)
		case n == 25:
			t.cursor.Attr.Flags.Clear(FlagBlink)
		case n == 27:
			t.cursor.Attr.Flags.Clear(FlagReverse)
		case n == 28:
			t.cursor.Attr.Flags.Clear(FlagInvisible)
		case n == 29:
			t.cursor.Attr.Flags.Clear(FlagStruck)
		case n >= 30 && n <= 37:
			t.cursor.Attr.Fg = palette256(n-30, DefaultForeground)
		case n == 38:
			c, consumed := t.parseExtendedColor(params[i+1:])
			t.cursor.Attr.Fg = c
			i += consumed
		case n == 39:
			t.cursor.Attr.Fg = DefaultForeground
		case n >= 40 && n <= 47:
			t.cursor.Attr.Bg = palette256(n-40, DefaultBackground)
		case n == 48:
			c, consumed := t.parseExtendedColor(params[i+1:])
			t.cursor.Attr.Bg = c
			i += consumed
		case n == 49:
			t.cursor.Attr.Bg = DefaultBackground
		case n >= 90 && n <= 97:
			t.cursor.Attr.Fg = palette256(n-90+8, DefaultForeground)
		case n >= 100 && n <= 107:
			t.cursor.Attr.Bg = palette256(n-100+8, DefaultBackground)
		}
	}
}

func (t *Terminal) resetSGR() {
	t.cursor.Attr = attrTemplate(blankGlyph(DefaultForeground, DefaultBackground))
}

// parseExtendedColor consumes the sub-parameters following a 38/48 code,
// returning the resolved Color and the count of extra parameters eaten.
func (t *Terminal) parseExtendedColor(rest []int) (Color, int) {
	if len(rest) == 0 {
		return DefaultForeground, 0
	}
	switch rest[0] {
	case 5: // indexed: 38;5;n
		if len(rest) >= 2 {
			return palette256(rest[1], DefaultForeground), 2
		}
		return DefaultForeground, 1
	case 2: // direct RGB: 38;2;r;g;b
		if len(rest) >= 4 {
			return RGB(uint8(rest[1]), uint8(rest[2]), uint8(rest[3])), 4
		}
		return DefaultForeground, len(rest)
	default:
		return DefaultForeground, 0
	}
}
