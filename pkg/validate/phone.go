package validate

import (
	"strings"
	"unicode"
)

// NormalizePhone strips separators and returns the number in +digits form.
// The result still has to pass an e164 check.
func NormalizePhone(s string) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 1 {
		return ""
	}
	return b.String()
}
