package lexer

import "unicode"

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func isDec(r rune) bool { return r >= '0' && r <= '9' }

func isHex(r rune) bool {
	return isDec(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func digitValue(r rune) int {
	switch {
	case isDec(r):
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// unescape maps the character after a backslash to its value.
func unescape(r rune) (rune, bool) {
	switch r {
	case '0':
		return 0, true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case '\\', '"', '\'':
		return r, true
	}
	return 0, false
}
