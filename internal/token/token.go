package token

import (
	"fmt"
	"strconv"
	"strings"

	"alef/internal/source"
)

// Token is one lexical unit. Only the payload field matching Kind is
// meaningful: Keyword, Operator and Delimiter for the fixed-spelling kinds,
// Text for identifiers and string literals, Int, Float and Char for the
// remaining literals.
type Token struct {
	Kind  Kind
	Range source.Range
	// Valid is false when a recoverable fault was diagnosed while scanning
	// a literal. Non-literal tokens are always valid except Invalid.
	Valid bool

	Keyword   KeywordID
	Operator  OperatorID
	Delimiter DelimiterID
	Text      string
	Int       int64
	Float     float64
	Char      rune
}

// Loc returns the start location of the token.
func (t Token) Loc() source.Location { return t.Range.Start }

func (t Token) IsEnd() bool        { return t.Kind == End }
func (t Token) IsInvalid() bool    { return t.Kind == Invalid }
func (t Token) IsIdentifier() bool { return t.Kind == Identifier }
func (t Token) IsLiteral() bool    { return t.Kind.IsLiteral() }

// IsEllipsis reports whether t is the "..." pseudo-identifier.
func (t Token) IsEllipsis() bool { return t.Kind == Identifier && t.Text == "..." }

// IsAnyKeyword reports whether t is a keyword at all.
func (t Token) IsAnyKeyword() bool { return t.Kind == Keyword }

// IsKeyword reports whether t is the keyword k.
func (t Token) IsKeyword(k KeywordID) bool { return t.Kind == Keyword && t.Keyword == k }

// InKeywords reports whether t is one of ks.
func (t Token) InKeywords(ks ...KeywordID) bool {
	if t.Kind != Keyword {
		return false
	}
	for _, k := range ks {
		if t.Keyword == k {
			return true
		}
	}
	return false
}

func (t Token) IsAnyOperator() bool { return t.Kind == Operator }

func (t Token) IsOperator(op OperatorID) bool { return t.Kind == Operator && t.Operator == op }

func (t Token) InOperators(ops ...OperatorID) bool {
	if t.Kind != Operator {
		return false
	}
	for _, op := range ops {
		if t.Operator == op {
			return true
		}
	}
	return false
}

func (t Token) IsAnyDelimiter() bool { return t.Kind == Delimiter }

func (t Token) IsDelimiter(d DelimiterID) bool { return t.Kind == Delimiter && t.Delimiter == d }

func (t Token) InDelimiters(ds ...DelimiterID) bool {
	if t.Kind != Delimiter {
		return false
	}
	for _, d := range ds {
		if t.Delimiter == d {
			return true
		}
	}
	return false
}

// Same reports whether t and o have the same kind and payload, ignoring
// ranges.
func (t Token) Same(o Token) bool {
	if t.Kind != o.Kind || t.Valid != o.Valid {
		return false
	}
	switch t.Kind {
	case Keyword:
		return t.Keyword == o.Keyword
	case Operator:
		return t.Operator == o.Operator
	case Delimiter:
		return t.Delimiter == o.Delimiter
	case Identifier, String, Runestring:
		return t.Text == o.Text
	case Integer:
		return t.Int == o.Int
	case Float:
		return t.Float == o.Float
	case Character:
		return t.Char == o.Char
	default:
		return true
	}
}

// Lexeme returns the canonical spelling of fixed-spelling tokens and
// identifiers, and the scanned source text of everything else.
func (t Token) Lexeme() string {
	switch t.Kind {
	case Keyword:
		return t.Keyword.String()
	case Operator:
		return t.Operator.String()
	case Delimiter:
		return t.Delimiter.String()
	case Identifier:
		return t.Text
	case End:
		return ""
	default:
		return t.Range.Content
	}
}

// String renders the display form used by `alef lex`.
func (t Token) String() string {
	switch t.Kind {
	case Keyword:
		return fmt.Sprintf("keyword %q", t.Keyword.String())
	case Operator:
		return fmt.Sprintf("operator %q", t.Operator.String())
	case Delimiter:
		return fmt.Sprintf("delimiter %q", t.Delimiter.String())
	case Identifier:
		return fmt.Sprintf("identifier %q", t.Text)
	case Integer:
		return "integer " + strconv.FormatInt(t.Int, 10)
	case Float:
		return "float " + strconv.FormatFloat(t.Float, 'g', -1, 64)
	case Character:
		return "char '" + Escape(string(t.Char), '\'') + "'"
	case String:
		return `string "` + Escape(t.Text, '"') + `"`
	case Runestring:
		return `runestring "` + Escape(t.Text, '"') + `"`
	case End:
		return "eof"
	default:
		return "invalid"
	}
}

// Escape writes s back with the literal escape set, quoting q.
func Escape(s string, q rune) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case 0:
			b.WriteString(`\0`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\\':
			b.WriteString(`\\`)
		case q:
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
