// Package textutil prepares untrusted path text for terminal output.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// SanitizePath replaces control characters and invisible formatting
// runes so file names cannot inject terminal escape sequences or
// reorder rendered text.
func SanitizePath(text string) string {
	for _, r := range text {
		if requiresSanitization(r) {
			return sanitize(text)
		}
	}
	return text
}

func requiresSanitization(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return true
	}
	if isFormattingRune(r) {
		return true
	}
	return (r >= 0 && r < 0x20) || r == 0x7f
}

func sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if requiresSanitization(r) {
			b.WriteRune('�')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isFormattingRune(r rune) bool {
	switch {
	case r == 0x00AD || r == 0x061C || r == 0x180E:
		return true
	case r >= 0x200B && r <= 0x200F:
		return true
	case r >= 0x2028 && r <= 0x202E:
		return true
	case r >= 0x2060 && r <= 0x206F:
		return true
	case r == 0xFEFF:
		return true
	}
	return false
}

// TruncateDisplay trims text to at most maxWidth terminal cells,
// appending an ellipsis when anything was cut.
func TruncateDisplay(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= maxWidth {
		return text
	}
	const ellipsis = '…'
	budget := maxWidth - runewidth.RuneWidth(ellipsis)
	var b strings.Builder
	width := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if width+w > budget {
			break
		}
		b.WriteRune(r)
		width += w
	}
	b.WriteRune(ellipsis)
	return b.String()
}
