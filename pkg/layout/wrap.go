package layout

import (
	"strings"
	"unicode/utf8"
)

// Wrap splits text into lines of at most width characters, breaking only on
// whitespace. Words are never split mid-word or at hyphens; a word longer
// than width is emitted alone on its own line.
//
// Runs of whitespace collapse to single spaces, so joining the returned
// lines with spaces reproduces the input text modulo whitespace.
// Empty or all-whitespace input yields no lines.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var line strings.Builder
	lineLen := 0

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		switch {
		case lineLen == 0:
			line.WriteString(word)
			lineLen = wordLen
		case lineLen+1+wordLen <= width:
			line.WriteByte(' ')
			line.WriteString(word)
			lineLen += 1 + wordLen
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			lineLen = wordLen
		}
	}
	lines = append(lines, line.String())

	return lines
}
