package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"alef/internal/source"
	"alef/internal/token"
)

// numberScan collects the digits of one literal. Only the first fault of
// a literal is reported.
type numberScan struct {
	lx    *Lexer
	start source.Location
	sb    strings.Builder
	base  int
	ok    bool
}

func (n *numberScan) fail(at source.Location, width int, label, reason string) {
	if !n.ok {
		return
	}
	n.ok = false
	n.lx.publish(n.lx.literalDiagnostic(at, width, label, reason, ""))
}

// digits accumulates digits of the current base; digits that are too
// large for it are reported and skipped so the literal stays in sync.
func (n *numberScan) digits(base int) int {
	count := 0
	for {
		c := n.lx.pch(0)
		valid := isDec(c) || (base == 16 && isHex(c))
		if !valid {
			return count
		}
		if digitValue(c) >= base {
			n.fail(n.lx.loc(), 1, fmt.Sprintf("symbol '%c'", c),
				fmt.Sprintf("invalid digit '%c' in base %d literal", c, base))
			n.lx.ch()
			continue
		}
		n.sb.WriteRune(c)
		n.lx.ch()
		count++
	}
}

// scanNumber reads 123, 0x7f, 017, 1.5, .5, 1e9, 1.5e-3.
func (lx *Lexer) scanNumber() token.Token {
	n := &numberScan{lx: lx, start: lx.loc(), base: 10, ok: true}

	if lx.pch(0) != '.' {
		if lx.pch(0) == '0' {
			switch p := lx.pch(1); {
			case p == 'x' || p == 'X':
				lx.bump(2)
				n.base = 16
			case p >= '1' && p <= '9':
				lx.ch()
				n.base = 8
			}
		}
		if n.digits(n.base) == 0 && n.base != 10 {
			n.fail(n.start, 2, "no digits after prefix",
				fmt.Sprintf("invalid empty base %d literal", n.base))
			n.sb.WriteByte('0')
		}
	}

	isFloat := false
	if lx.pch(0) == '.' {
		if n.base != 10 {
			n.fail(lx.loc(), 1, "symbol '.'",
				fmt.Sprintf("invalid radix point in base %d literal", n.base))
		}
		if n.sb.Len() == 0 {
			n.sb.WriteByte('0')
		}
		n.sb.WriteByte('.')
		lx.ch()
		n.digits(10)
		isFloat = true
	}

	if (isFloat || n.base == 10) && (lx.pch(0) == 'e' || lx.pch(0) == 'E') {
		if n.base != 10 {
			n.fail(lx.loc(), 1, fmt.Sprintf("symbol '%c'", lx.pch(0)),
				fmt.Sprintf("invalid exponent notation in base %d literal", n.base))
		}
		n.sb.WriteByte('e')
		lx.ch()
		if s := lx.pch(0); s == '+' || s == '-' {
			n.sb.WriteRune(s)
			lx.ch()
		}
		if n.digits(10) == 0 {
			n.fail(lx.prev, 1, "exponent ends here", "float exponent has no digits")
		}
		isFloat = true
	}

	r := lx.rangeFrom(n.start)
	if isFloat {
		return n.float(r)
	}
	return n.integer(r)
}

func (n *numberScan) integer(r source.Range) token.Token {
	tok := token.Token{Kind: token.Integer, Range: r}
	v, err := strconv.ParseInt(n.sb.String(), n.base, 64)
	if err != nil {
		n.fail(n.start, rangeWidth(r), "in this literal", "error parsing integer literal: "+numErrReason(err))
		v = 0
	}
	tok.Int = v
	tok.Valid = n.ok
	return tok
}

func (n *numberScan) float(r source.Range) token.Token {
	tok := token.Token{Kind: token.Float, Range: r}
	v, err := strconv.ParseFloat(n.sb.String(), 64)
	if err != nil {
		n.fail(n.start, rangeWidth(r), "in this literal", "error parsing float literal: "+numErrReason(err))
		v = 0
	}
	tok.Float = v
	tok.Valid = n.ok
	return tok
}

func numErrReason(err error) string {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err.Error()
	}
	return err.Error()
}

func rangeWidth(r source.Range) int {
	s, e := r.Columns()
	return e - s + 1
}
