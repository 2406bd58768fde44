package token

// KeywordID enumerates the reserved words.
type KeywordID uint8

const (
	NoKeyword KeywordID = iota
	KwAdt
	KwAggr
	KwAlloc
	KwAlt
	KwBecome
	KwBreak
	KwCase
	KwCheck
	KwContinue
	KwDefault
	KwDo
	KwElse
	KwEnum
	KwExtern
	KwFor
	KwGoto
	KwIf
	KwIntern
	KwNil
	KwPar
	KwProc
	KwPrivate
	KwRaise
	KwRescue
	KwReturn
	KwSizeof
	KwSwitch
	KwTask
	KwTuple
	KwTypedef
	KwTypeof
	KwUnalloc
	KwUnion
	KwWhile
	KwZerox
	keywordCount
)

var keywordNames = [...]string{
	KwAdt:      "adt",
	KwAggr:     "aggr",
	KwAlloc:    "alloc",
	KwAlt:      "alt",
	KwBecome:   "become",
	KwBreak:    "break",
	KwCase:     "case",
	KwCheck:    "check",
	KwContinue: "continue",
	KwDefault:  "default",
	KwDo:       "do",
	KwElse:     "else",
	KwEnum:     "enum",
	KwExtern:   "extern",
	KwFor:      "for",
	KwGoto:     "goto",
	KwIf:       "if",
	KwIntern:   "intern",
	KwNil:      "nil",
	KwPar:      "par",
	KwProc:     "proc",
	KwPrivate:  "private",
	KwRaise:    "raise",
	KwRescue:   "rescue",
	KwReturn:   "return",
	KwSizeof:   "sizeof",
	KwSwitch:   "switch",
	KwTask:     "task",
	KwTuple:    "tuple",
	KwTypedef:  "typedef",
	KwTypeof:   "typeof",
	KwUnalloc:  "unalloc",
	KwUnion:    "union",
	KwWhile:    "while",
	KwZerox:    "zerox",
}

var keywords = func() map[string]KeywordID {
	m := make(map[string]KeywordID, int(keywordCount)-1)
	for id := KwAdt; id < keywordCount; id++ {
		m[keywordNames[id]] = id
	}
	return m
}()

// LookupKeyword возвращает ключевое слово по имени.
// Регистр важен: "If" остаётся идентификатором.
func LookupKeyword(name string) (KeywordID, bool) {
	k, ok := keywords[name]
	return k, ok
}

// Keywords returns every keyword in declaration order.
func Keywords() []KeywordID {
	out := make([]KeywordID, 0, int(keywordCount)-1)
	for id := KwAdt; id < keywordCount; id++ {
		out = append(out, id)
	}
	return out
}

func (k KeywordID) String() string {
	if k > NoKeyword && k < keywordCount {
		return keywordNames[k]
	}
	return "KeywordID(?)"
}
