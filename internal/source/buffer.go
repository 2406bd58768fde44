package source

import (
	"strings"
	"unicode/utf8"
)

// Buffer owns the decoded text of one source and tracks the read position.
//
// Every consumed character records the position after it in a
// (line, col) -> byte index map, and the origin (1,1) -> 0 is recorded up
// front, so any location handed out by the buffer can be resolved back to
// a byte offset.
type Buffer struct {
	name      string
	text      string
	flags     Flags
	replaced  int
	index     int
	lineStart int // байтовый индекс сразу после последнего '\n'
	line      uint32
	col       uint32
	positions map[pos]int
}

// NewBuffer creates a buffer over in-memory text.
func NewBuffer(name, text string) *Buffer {
	return newBuffer(name, text, FlagVirtual)
}

func newBuffer(name, text string, flags Flags) *Buffer {
	replaced := 0
	if !utf8.ValidString(text) {
		replaced = countInvalidRuns(text)
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
		flags |= FlagReplacedInvalidUTF8
	}
	b := &Buffer{
		name:      name,
		text:      text,
		flags:     flags,
		replaced:  replaced,
		line:      1,
		col:       1,
		positions: make(map[pos]int, len(text)/4+1),
	}
	b.positions[pos{line: 1, col: 1}] = 0
	return b
}

func (b *Buffer) Name() string   { return b.name }
func (b *Buffer) Text() string   { return b.text }
func (b *Buffer) Len() int       { return len(b.text) }
func (b *Buffer) Flags() Flags   { return b.flags }
func (b *Buffer) Index() int     { return b.index }
func (b *Buffer) AtEnd() bool    { return b.index >= len(b.text) }
func (b *Buffer) Line() uint32   { return b.line }
func (b *Buffer) Column() uint32 { return b.col }

// Replacements returns how many invalid UTF-8 sequences were replaced
// with U+FFFD when the buffer was built.
func (b *Buffer) Replacements() int { return b.replaced }

// Next consumes and returns the next character. Past the end it returns EOF
// without changing state.
func (b *Buffer) Next() (rune, error) {
	if b.index >= len(b.text) {
		return EOF, nil
	}
	if !utf8.RuneStart(b.text[b.index]) {
		return EOF, b.readError(b.index)
	}
	r, size := utf8.DecodeRuneInString(b.text[b.index:])
	b.index += size
	if r == '\n' {
		b.line++
		b.col = 1
		b.lineStart = b.index
	} else {
		b.col++
	}
	b.positions[pos{line: b.line, col: b.col}] = b.index
	return r, nil
}

// Peek returns the k-th character ahead of the read position (0 is the
// next unconsumed one) without consuming anything.
func (b *Buffer) Peek(k int) (rune, error) {
	i := b.index
	for n := 0; ; n++ {
		if i >= len(b.text) {
			return EOF, nil
		}
		if !utf8.RuneStart(b.text[i]) {
			return EOF, b.readError(i)
		}
		r, size := utf8.DecodeRuneInString(b.text[i:])
		if n == k {
			return r, nil
		}
		i += size
	}
}

// Location snapshots the current read position.
func (b *Buffer) Location() Location {
	return At(b.name, b.line, b.col, u32(b.index))
}

// RangeTo is Range with the end at the current read position.
func (b *Buffer) RangeTo(start Location) Range {
	return b.Range(start, Location{})
}

// Range resolves start and end (the current position when end is a
// sentinel) to byte offsets and slices the text between them, including
// the character at end.
func (b *Buffer) Range(start, end Location) Range {
	si, ok := b.resolve(start)
	if !ok {
		return Range{Start: start, End: end}
	}
	ei := b.index
	if end.IsConcrete() {
		ei, _ = b.resolve(end)
	} else {
		end = b.Location()
	}
	if ei < si {
		ei = si
	}
	stop := ei
	if stop < len(b.text) {
		_, size := utf8.DecodeRuneInString(b.text[stop:])
		stop += size
	}
	return Range{Start: start, End: end, Content: b.text[si:stop]}
}

// resolve maps a location to a byte offset. Concrete locations missing from
// the position map fall back to their own index while it lies inside the
// consumed prefix; anything else resolves to the current index and reports
// false.
func (b *Buffer) resolve(l Location) (int, bool) {
	if !l.IsConcrete() {
		return b.index, false
	}
	if i, ok := b.positions[pos{line: l.Line, col: l.Col}]; ok {
		return i, true
	}
	if i := int(l.Index); i <= b.index {
		return i, true
	}
	return b.index, false
}

// CurrentLine returns the line holding the read position, without its
// terminating newline.
func (b *Buffer) CurrentLine() string {
	rest := b.text[b.lineStart:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		return rest[:nl]
	}
	return rest
}

func (b *Buffer) readError(i int) *ReadError {
	return &ReadError{Loc: b.Location(), Index: i, Err: ErrNotBoundary}
}

// LineOf returns the full line holding l, without its newline. Locations
// that do not resolve fall back to CurrentLine.
func (b *Buffer) LineOf(l Location) string {
	i, ok := b.resolve(l)
	if !ok {
		return b.CurrentLine()
	}
	start := strings.LastIndexByte(b.text[:i], '\n') + 1
	rest := b.text[start:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		return rest[:nl]
	}
	return rest
}
