package views

import (
	"strings"
	"unicode"
)

// sanitizeForTerminal strips codepoints that tcell cannot lay out: skin tone
// modifiers, zero width joiners and variation selectors. A thumbs-up with a
// skin tone collapses to the plain two-cell emoji. Line breaks become spaces
// so a result stays on its row.
func sanitizeForTerminal(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case isProblematicRune(r):
		case r == '\n' || r == '\r' || r == '\t':
			b.WriteByte(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isProblematicRune(r rune) bool {
	switch {
	// Skin tone modifiers.
	case r >= 0x1F3FB && r <= 0x1F3FF:
		return true
	case r == 0x200D:
		return true
	case r >= 0xFE00 && r <= 0xFE0F:
		return true
	case r >= 0xE0100 && r <= 0xE01EF:
		return true
	default:
		return false
	}
}
