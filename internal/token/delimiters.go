package token

// DelimiterID enumerates the punctuation that is not an operator.
type DelimiterID uint8

const (
	NoDelimiter DelimiterID = iota
	DelimLBrace             // {
	DelimRBrace             // }
	DelimLBracket           // [
	DelimRBracket           // ]
	DelimLParen             // (
	DelimRParen             // )
	DelimSemicolon          // ;
	DelimComma              // ,
	DelimColon              // :
	delimiterCount
)

var delimiterRunes = [...]rune{
	DelimLBrace:    '{',
	DelimRBrace:    '}',
	DelimLBracket:  '[',
	DelimRBracket:  ']',
	DelimLParen:    '(',
	DelimRParen:    ')',
	DelimSemicolon: ';',
	DelimComma:     ',',
	DelimColon:     ':',
}

// LookupDelimiter maps a single character to its delimiter.
func LookupDelimiter(r rune) (DelimiterID, bool) {
	for id := DelimLBrace; id < delimiterCount; id++ {
		if delimiterRunes[id] == r {
			return id, true
		}
	}
	return NoDelimiter, false
}

// Delimiters returns every delimiter in declaration order.
func Delimiters() []DelimiterID {
	out := make([]DelimiterID, 0, int(delimiterCount)-1)
	for id := DelimLBrace; id < delimiterCount; id++ {
		out = append(out, id)
	}
	return out
}

func (d DelimiterID) String() string {
	if d > NoDelimiter && d < delimiterCount {
		return string(delimiterRunes[d])
	}
	return "DelimiterID(?)"
}
