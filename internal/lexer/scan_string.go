package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"alef/internal/source"
	"alef/internal/token"
)

// literalScan tracks the single report allowed per literal.
type literalScan struct {
	lx *Lexer
	ok bool
}

func (s *literalScan) fail(at source.Location, width int, label, reason, help string) {
	if !s.ok {
		return
	}
	s.ok = false
	s.lx.publish(s.lx.literalDiagnostic(at, width, label, reason, help))
}

// escape consumes a backslash sequence and returns its value. An unknown
// escape is reported; the backslash and the escaped character are still
// consumed unless that character ends the line or the input.
func (s *literalScan) escape() (rune, bool) {
	lx := s.lx
	at := lx.loc()
	e := lx.pch(1)
	if v, ok := unescape(e); ok {
		lx.bump(2)
		return v, true
	}
	if e == '\n' || (e == source.EOF && lx.buf.Index()+1 >= lx.buf.Len()) {
		s.fail(at, 1, "symbol '\\'", "invalid escaped character at end of line", "")
		lx.ch()
		return 0, false
	}
	s.fail(at, 2, fmt.Sprintf("symbol '%c'", e),
		fmt.Sprintf("invalid escaped character '%c'", e),
		`valid escapes are \0 \n \r \t \\ \" \'`)
	lx.bump(2)
	return 0, false
}

// scanChar reads 'c' or '\n'.
func (lx *Lexer) scanChar() token.Token {
	start := lx.loc()
	s := &literalScan{lx: lx, ok: true}
	lx.ch() // '

	var val rune
	switch c := lx.pch(0); {
	case c == '\\':
		val, _ = s.escape()
	case c == '\'':
		s.fail(start, 2, "empty literal", "empty character literal", "")
	case c == '\n' || lx.eofAt(c):
		// закрывающая кавычка отсутствует, сообщим ниже
	default:
		val = c
		lx.ch()
	}

	if lx.pch(0) == '\'' {
		lx.ch()
	} else if k, found := lx.quoteOnLine('\''); found {
		s.fail(start, 1, "literal starts here", "character literal has more than one character",
			`use a string literal "..." for longer text`)
		lx.bump(k + 1)
	} else {
		s.fail(lx.loc(), 1, "expected '\\'' here", "missing '\\'' after character literal", "")
	}

	return token.Token{Kind: token.Character, Char: val, Range: lx.rangeFrom(start), Valid: s.ok}
}

// quoteOnLine finds q ahead on the current line and returns its distance.
func (lx *Lexer) quoteOnLine(q rune) (int, bool) {
	for k := 0; ; k++ {
		c := lx.pch(k)
		switch {
		case c == q:
			return k, true
		case c == '\n' || c == source.EOF:
			return 0, false
		}
	}
}

// scanString reads "..." and, with kind Runestring, $"...". Plain strings
// accept only ASCII.
func (lx *Lexer) scanString(kind token.Kind) token.Token {
	start := lx.loc()
	s := &literalScan{lx: lx, ok: true}
	what := "string"
	if kind == token.Runestring {
		what = "runestring"
		lx.ch() // $
	}
	lx.ch() // "

	var sb strings.Builder
	for {
		c := lx.pch(0)
		if c == '"' {
			lx.ch()
			break
		}
		if c == '\n' || lx.eofAt(c) {
			s.fail(start, 1, what+" starts here", fmt.Sprintf("missing '\"' after %s literal", what),
				`close the literal with '"' before the end of the line`)
			break
		}
		if c == '\\' {
			if v, ok := s.escape(); ok {
				sb.WriteRune(v)
			}
			continue
		}
		if kind == token.String && c >= utf8.RuneSelf {
			s.fail(lx.loc(), 1, fmt.Sprintf("symbol '%c'", c),
				fmt.Sprintf("invalid non-ASCII character '%c' in string", c),
				`use a runestring literal $"..." for Unicode text`)
			lx.ch()
			continue
		}
		sb.WriteRune(c)
		lx.ch()
	}

	return token.Token{Kind: kind, Text: sb.String(), Range: lx.rangeFrom(start), Valid: s.ok}
}
