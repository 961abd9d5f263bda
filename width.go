package nast

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width: 2 for wide characters (CJK, emoji),
// 1 for normal, 0 for zero-width (combining marks, control chars).
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// isWideRune returns true if the rune occupies 2 columns.
func isWideRune(r rune) bool {
	return uniwidth.RuneWidth(r) == 2
}

// StringWidth returns the total display width of a string.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}

// printableGlyph resolves a rune to the (rune, width) pair that should
// actually be written to the screen. Per the open question on wcwidth
// edge cases: any rune whose width resolves negative (wcwidth(u) == -1 in
// the C table) is substituted with U+FFFD and forced to width 1, rather
// than treated as an extension point for the full Unicode width table.
func printableGlyph(r rune) (rune, int) {
	w := runeWidth(r)
	if w < 0 {
		return '�', 1
	}
	return r, w
}
