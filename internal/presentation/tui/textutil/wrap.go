package textutil

import (
	"strings"
	"unicode"
)

// MinWrapWidth is the narrowest width Wrap will lay text out at.
const MinWrapWidth = 10

// wide lists the code points drawn two columns wide.
var wide = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x1100, Hi: 0x115F, Stride: 1}, // Hangul Jamo
		{Lo: 0x2E80, Hi: 0x9FFF, Stride: 1}, // CJK radicals through unified ideographs, kana, bopomofo
		{Lo: 0xAC00, Hi: 0xD7A3, Stride: 1}, // Hangul syllables
		{Lo: 0xF900, Hi: 0xFAFF, Stride: 1}, // CJK compatibility ideographs
		{Lo: 0xFE10, Hi: 0xFE1F, Stride: 1}, // vertical forms
		{Lo: 0xFE30, Hi: 0xFE6F, Stride: 1}, // CJK compatibility forms
		{Lo: 0xFF00, Hi: 0xFF60, Stride: 1}, // fullwidth ASCII
		{Lo: 0xFFE0, Hi: 0xFFE6, Stride: 1}, // fullwidth symbols
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2FFFF, Stride: 1}, // CJK extensions B-F
		{Lo: 0x30000, Hi: 0x3FFFF, Stride: 1}, // CJK extension G and later
	},
}

// IsWide reports whether r occupies two terminal columns.
func IsWide(r rune) bool {
	return unicode.Is(wide, r)
}

// RuneWidth returns the number of columns r occupies.
func RuneWidth(r rune) int {
	if IsWide(r) {
		return 2
	}
	return 1
}

// Width returns the number of columns text occupies on one line.
func Width(text string) int {
	w := 0
	for _, r := range text {
		w += RuneWidth(r)
	}
	return w
}

// ClipWidth cuts plain text to at most width columns, measuring with the
// same table as Wrap. A wide glyph that would straddle the edge is dropped.
func ClipWidth(text string, width int) string {
	used := 0
	for i, r := range text {
		w := RuneWidth(r)
		if used+w > width {
			return text[:i]
		}
		used += w
	}
	return text
}

// Wrap breaks text into lines no wider than width columns.
//
// Existing newlines are kept, and an empty paragraph becomes an empty line.
// Empty text yields no lines. Width is raised to MinWrapWidth. A glyph wider
// than the line is placed alone on its own line.
func Wrap(text string, width int) []string {
	if text == "" {
		return nil
	}
	width = max(width, MinWrapWidth)

	var lines []string
	for paragraph := range strings.SplitSeq(text, "\n") {
		if paragraph == "" {
			lines = append(lines, "")
			continue
		}

		var line strings.Builder
		lineWidth := 0
		for _, r := range paragraph {
			w := RuneWidth(r)
			if lineWidth+w > width && line.Len() > 0 {
				lines = append(lines, line.String())
				line.Reset()
				lineWidth = 0
			}
			line.WriteRune(r)
			lineWidth += w
		}
		if line.Len() > 0 {
			lines = append(lines, line.String())
		}
	}
	return lines
}
