package nast

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15),
// a 216-color cube (16-231), and 24 grayscale steps (232-255).
var DefaultPalette [256]Color

func init() {
	base16 := [16]Color{
		RGB(0, 0, 0), RGB(205, 49, 49), RGB(13, 188, 121), RGB(229, 229, 16),
		RGB(36, 114, 200), RGB(188, 63, 188), RGB(17, 168, 205), RGB(229, 229, 229),
		RGB(102, 102, 102), RGB(241, 76, 76), RGB(35, 209, 139), RGB(245, 245, 67),
		RGB(59, 142, 234), RGB(214, 112, 214), RGB(41, 184, 219), RGB(255, 255, 255),
	}
	copy(DefaultPalette[:16], base16[:])

	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = RGB(uint8(r*51), uint8(g*51), uint8(b*51))
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = RGB(gray, gray, gray)
	}
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = RGB(229, 229, 229)

// DefaultBackground is the default background color (black).
var DefaultBackground = RGB(0, 0, 0)

// DefaultCursorColor is the default cursor rendering color.
var DefaultCursorColor = RGB(229, 229, 229)

// palette256 resolves an indexed (38;5;N / 48;5;N) SGR color to RGB. Out of
// range indices fall back to the given default.
func palette256(n int, def Color) Color {
	if n < 0 || n > 255 {
		return def
	}
	return DefaultPalette[n]
}

// dim applies the ~0.66 scale xterm uses for "dim"/faint rendering of an
// otherwise-bright ANSI color, matching the teacher's named-color scheme.
func dim(c Color) Color {
	r, g, b := c.Channels()
	return RGB(uint8(float64(r)*0.66), uint8(float64(g)*0.66), uint8(float64(b)*0.66))
}
