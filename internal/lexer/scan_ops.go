package lexer

import (
	"strings"

	"alef/internal/source"
	"alef/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
const longestOperator = 3

// scanOperator matches the longest operator spelling at the read position.
func (lx *Lexer) scanOperator() (token.Token, bool) {
	start := lx.loc()
	for n := longestOperator; n >= 1; n-- {
		text, ok := lx.peekString(n)
		if !ok {
			continue
		}
		op, ok := token.LookupOperator(text)
		if !ok || op == token.OpDot {
			continue
		}
		lx.bump(n)
		return token.Token{Kind: token.Operator, Operator: op, Range: lx.rangeFrom(start), Valid: true}, true
	}
	return token.Token{}, false
}

func (lx *Lexer) scanDelimiter(c rune) (token.Token, bool) {
	d, ok := token.LookupDelimiter(c)
	if !ok {
		return token.Token{}, false
	}
	start := lx.loc()
	lx.ch()
	return token.Token{Kind: token.Delimiter, Delimiter: d, Range: lx.rangeFrom(start), Valid: true}, true
}

// scanDot handles "." and the "..." pseudo-identifier.
func (lx *Lexer) scanDot() token.Token {
	start := lx.loc()
	if lx.pch(1) == '.' && lx.pch(2) == '.' {
		lx.bump(3)
		return token.Token{Kind: token.Identifier, Text: "...", Range: lx.rangeFrom(start), Valid: true}
	}
	lx.ch()
	return token.Token{Kind: token.Operator, Operator: token.OpDot, Range: lx.rangeFrom(start), Valid: true}
}

// strayEllipsis consumes ".." not followed by a third dot.
func (lx *Lexer) strayEllipsis() {
	start := lx.loc()
	lx.bump(2)
	lx.publish(lx.ellipsisDiagnostic(start))
}

// peekString returns the next n characters, false if the input ends first.
func (lx *Lexer) peekString(n int) (string, bool) {
	var sb strings.Builder
	for k := range n {
		c := lx.pch(k)
		if c == source.EOF {
			return "", false
		}
		sb.WriteRune(c)
	}
	return sb.String(), true
}
