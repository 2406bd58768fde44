package token

// Kind represents the category of a token.
type Kind uint8

const (
	// Invalid marks a character that starts no token.
	Invalid Kind = iota
	// End marks the end of the input. It is produced forever once reached.
	End
	Keyword
	Operator
	Delimiter
	Identifier
	Integer
	Float
	Character
	String
	Runestring
)

var kindNames = [...]string{
	Invalid:    "invalid",
	End:        "eof",
	Keyword:    "keyword",
	Operator:   "operator",
	Delimiter:  "delimiter",
	Identifier: "identifier",
	Integer:    "integer",
	Float:      "float",
	Character:  "char",
	String:     "string",
	Runestring: "runestring",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsLiteral reports whether k is one of the literal kinds.
func (k Kind) IsLiteral() bool {
	switch k {
	case Integer, Float, Character, String, Runestring:
		return true
	default:
		return false
	}
}
