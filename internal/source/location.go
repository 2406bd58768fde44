package source

import "fmt"

// LocationKind discriminates the closed set of location variants.
type LocationKind uint8

const (
	// KindUnknown is the zero value: a synthetic or missing position.
	KindUnknown LocationKind = iota
	// KindPredeclared marks compiler-builtin entities.
	KindPredeclared
	// KindConcrete is a real position inside a buffer.
	KindConcrete
)

func (k LocationKind) String() string {
	switch k {
	case KindPredeclared:
		return "predeclared"
	case KindConcrete:
		return "concrete"
	default:
		return "unknown"
	}
}

// Location is a value snapshot of a position. Line and Col are 1-based,
// Index is a byte offset into the buffer text.
type Location struct {
	Kind   LocationKind
	Line   uint32
	Col    uint32
	Index  uint32
	Source string
}

// Predeclared returns the location used for builtin symbols.
func Predeclared() Location {
	return Location{Kind: KindPredeclared}
}

// Unknown returns the fallback location.
func Unknown() Location {
	return Location{}
}

// At builds a concrete location.
func At(name string, line, col, index uint32) Location {
	return Location{Kind: KindConcrete, Line: line, Col: col, Index: index, Source: name}
}

func (l Location) IsConcrete() bool    { return l.Kind == KindConcrete }
func (l Location) IsPredeclared() bool { return l.Kind == KindPredeclared }
func (l Location) IsUnknown() bool     { return l.Kind == KindUnknown }

// Before reports whether l lies strictly before other.
// Sentinel locations sort before any concrete one.
func (l Location) Before(other Location) bool {
	if l.Kind != KindConcrete || other.Kind != KindConcrete {
		return l.Kind < other.Kind
	}
	return l.Index < other.Index
}

func (l Location) String() string {
	switch l.Kind {
	case KindConcrete:
		return fmt.Sprintf("%s:%d:%d", l.Source, l.Line, l.Col)
	case KindPredeclared:
		return "<predeclared>"
	default:
		return "<unknown>"
	}
}
