package lexer

import (
	"errors"

	"alef/internal/source"
)

// maxReadRetries bounds how often a failed read is retried before the
// lexer gives up on the rest of the buffer.
const maxReadRetries = 4

// ch consumes one character. A read fault is published and retried.
func (lx *Lexer) ch() rune {
	for attempt := 1; ; attempt++ {
		if lx.broken {
			return source.EOF
		}
		loc := lx.buf.Location()
		before := lx.buf.Index()
		r, err := lx.buf.Next()
		if err == nil {
			if lx.buf.Index() != before {
				lx.prev = loc
			}
			return r
		}
		lx.readFault(err, attempt)
	}
}

// pch returns the k-th unconsumed character without consuming it.
func (lx *Lexer) pch(k int) rune {
	for attempt := 1; ; attempt++ {
		if lx.broken {
			return source.EOF
		}
		r, err := lx.buf.Peek(k)
		if err == nil {
			return r
		}
		lx.readFault(err, attempt)
	}
}

func (lx *Lexer) readFault(err error, attempt int) {
	var rerr *source.ReadError
	if !errors.As(err, &rerr) {
		rerr = &source.ReadError{Loc: lx.buf.Location(), Index: lx.buf.Index(), Err: err}
	}
	lx.publish(readFaultDiagnostic(rerr))
	if attempt >= maxReadRetries {
		lx.broken = true
	}
}

// atEnd reports whether nothing is left to read.
func (lx *Lexer) atEnd() bool {
	return lx.broken || lx.buf.AtEnd()
}

// eofAt reports whether c, just returned by pch(0), is the end of input
// rather than a NUL character in the text.
func (lx *Lexer) eofAt(c rune) bool {
	return c == source.EOF && lx.atEnd()
}

// bump consumes n characters.
func (lx *Lexer) bump(n int) {
	for range n {
		lx.ch()
	}
}

func (lx *Lexer) loc() source.Location {
	return lx.buf.Location()
}

// rangeFrom covers start through the last consumed character.
func (lx *Lexer) rangeFrom(start source.Location) source.Range {
	end := lx.prev
	if end.Before(start) {
		end = start
	}
	return lx.buf.Range(start, end)
}
