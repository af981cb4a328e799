package quiz

import "strings"

// ExtractToken maps a displayable option string to its canonical selectable
// token. The rules mirror how banks label options:
//
//	"B. Memory"  -> "B"   (substring before the first dot, trimmed)
//	"(T) True"   -> "T"   (between the first "(" and the ")" after it, trimmed)
//	"XYZ"        -> "X"   (first rune fallback)
//
// The fallback is a heuristic: options that follow neither convention yield a
// single-rune token that may not be what the author intended. That behavior
// is deliberate — flagged, not fixed. Case is preserved; only the grading
// comparison is case-insensitive.
func ExtractToken(option string) string {
	if i := strings.IndexByte(option, '.'); i >= 0 {
		return strings.TrimSpace(option[:i])
	}

	if open := strings.IndexByte(option, '('); open >= 0 {
		rest := option[open+1:]
		if end := strings.IndexByte(rest, ')'); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
	}

	for _, r := range option {
		return string(r)
	}
	return ""
}
