package pdf

import "strings"

// EscapeText escapes the three characters with syntactic meaning inside a
// PDF literal string: backslash, "(" and ")". Each is prefixed with a
// backslash. The backslash itself must be escaped first so the parenthesis
// escapes are not doubled.
func EscapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "(", `\(`)
	s = strings.ReplaceAll(s, ")", `\)`)
	return s
}
