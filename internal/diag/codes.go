package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo              Code = 1000
	LexStrayChar         Code = 1001
	LexBadLiteral        Code = 1002
	LexUnterminatedBlock Code = 1003
	LexPreprocessor      Code = 1004
	LexSourceRead        Code = 1005
	LexInvalidEncoding   Code = 1006
)

var codeDescription = map[Code]string{
	UnknownCode:          "Unknown error",
	LexInfo:              "Lexical information",
	LexStrayChar:         "stray character",
	LexBadLiteral:        "malformed literal",
	LexUnterminatedBlock: "unterminated comment",
	LexPreprocessor:      "unremoved preprocessor directive",
	LexSourceRead:        "source read fault",
	LexInvalidEncoding:   "invalid source encoding",
}

func (c Code) ID() string {
	if ic := int(c); ic >= 1000 && ic < 2000 {
		return fmt.Sprintf("LEX%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
