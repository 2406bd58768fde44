package lexer

import (
	"strings"

	"alef/internal/token"
)

// skipComment consumes // and /* */ comments and hands them to the
// comment sink.
func (lx *Lexer) skipComment() {
	start := lx.loc()
	lx.ch() // '/'
	if lx.ch() == '/' {
		for c := lx.pch(0); c != '\n' && !lx.eofAt(c); c = lx.pch(0) {
			lx.ch()
		}
	} else {
		closed := false
		for c := lx.pch(0); !lx.eofAt(c); c = lx.pch(0) {
			if c == '*' && lx.pch(1) == '/' {
				lx.bump(2)
				closed = true
				break
			}
			lx.ch()
		}
		if !closed {
			lx.publish(lx.commentDiagnostic(start))
		}
	}

	if lx.opts.Comments != nil {
		r := lx.rangeFrom(start)
		lx.opts.Comments.Record(token.Comment{Range: r, Text: r.Content})
	}
}

// skipPreproc consumes a '#' line. Line markers left by the preprocessor
// pass silently; anything else is a leftover directive.
func (lx *Lexer) skipPreproc() {
	start := lx.loc()
	var sb strings.Builder
	for c := lx.pch(0); c != '\n' && !lx.eofAt(c); c = lx.pch(0) {
		sb.WriteRune(c)
		lx.ch()
	}
	line := sb.String()
	if !isLineMarker(line) {
		lx.publish(lx.preprocDiagnostic(start, len([]rune(line))))
	}
}

// isLineMarker accepts "# <digits> <filename> [flags...]".
func isLineMarker(line string) bool {
	fields := strings.Fields(strings.TrimPrefix(line, "#"))
	if len(fields) < 2 || !allDigits(fields[0]) {
		return false
	}
	name := fields[1]
	if strings.HasPrefix(name, `"`) && (len(name) < 2 || !strings.HasSuffix(name, `"`)) {
		return false
	}
	for _, flag := range fields[2:] {
		if !allDigits(flag) {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDec(r) {
			return false
		}
	}
	return true
}
