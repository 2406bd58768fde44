package lexer

import (
	"strings"

	"alef/internal/token"
)

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.loc()
	var sb strings.Builder
	for c := lx.pch(0); isIdentContinue(c); c = lx.pch(0) {
		sb.WriteRune(c)
		lx.ch()
	}
	name := sb.String()
	r := lx.rangeFrom(start)
	if kw, ok := token.LookupKeyword(name); ok {
		return token.Token{Kind: token.Keyword, Keyword: kw, Range: r, Valid: true}
	}
	return token.Token{Kind: token.Identifier, Text: name, Range: r, Valid: true}
}

// scanStray consumes a character that starts no token.
func (lx *Lexer) scanStray() token.Token {
	start := lx.loc()
	c := lx.ch()
	r := lx.rangeFrom(start)
	lx.publish(lx.strayDiagnostic(start, c))
	return token.Token{Kind: token.Invalid, Range: r, Text: string(c)}
}
