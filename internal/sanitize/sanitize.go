package sanitize

import (
	"html"
	"strings"
)

// Clean normalizes a free-text form field: whitespace is trimmed, backslash
// escape sequences are collapsed, and HTML metacharacters (including quotes)
// are entity-escaped. Passwords must never pass through Clean; they are
// compared verbatim against stored hashes.
func Clean(s string) string {
	s = strings.TrimSpace(s)
	s = stripSlashes(s)
	return html.EscapeString(s)
}

// Email strips characters that cannot appear in an email address. Unlike
// Clean it performs no HTML escaping, so a syntactically valid address is
// preserved byte for byte.
func Email(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if isEmailRune(r) {
			return r
		}
		return -1
	}, s)
}

func stripSlashes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}

func isEmailRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("!#$%&'*+-/=?^_`{|}~@.[]", r)
}
