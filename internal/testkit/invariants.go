// Package testkit holds checks shared by tests of several packages.
package testkit

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"alef/internal/source"
	"alef/internal/token"
)

// CheckTokenInvariants runs the stream invariants on tokens scanned from
// buf:
// 1) the stream ends in exactly one End token
// 2) every token starts at a concrete location of buf, in increasing order
// 3) every range's Content is the text from its start through the
// character at its end
// 4) only Invalid tokens and literals may be marked invalid
func CheckTokenInvariants(buf *source.Buffer, toks []token.Token) error {
	if buf == nil {
		return fmt.Errorf("nil buffer")
	}
	if len(toks) == 0 {
		return fmt.Errorf("empty token stream")
	}
	for i, tok := range toks[:len(toks)-1] {
		if tok.IsEnd() {
			return fmt.Errorf("End at %d of %d tokens", i, len(toks))
		}
	}
	if last := toks[len(toks)-1]; !last.IsEnd() {
		return fmt.Errorf("stream ends in %s, not End", last)
	}

	text := buf.Text()
	textLen, err := safecast.Conv[uint32](len(text))
	if err != nil {
		return fmt.Errorf("len text overflow: %w", err)
	}

	var prev uint32
	for i, tok := range toks {
		r := tok.Range
		if !r.Start.IsConcrete() || r.Start.Source != buf.Name() {
			return fmt.Errorf("token %d (%s): start %s is not in %s", i, tok, r.Start, buf.Name())
		}
		if r.Start.Index > textLen {
			return fmt.Errorf("token %d (%s): start %d beyond text length %d", i, tok, r.Start.Index, textLen)
		}
		if i > 0 && r.Start.Index <= prev && !tok.IsEnd() {
			return fmt.Errorf("token %d (%s): start %d does not follow %d", i, tok, r.Start.Index, prev)
		}
		prev = r.Start.Index

		if tok.IsEnd() {
			continue
		}
		if !r.HasEnd() || r.End.Before(r.Start) {
			return fmt.Errorf("token %d (%s): bad end %s", i, tok, r.End)
		}
		stop := int(r.End.Index)
		if stop < len(text) {
			_, size := utf8.DecodeRuneInString(text[stop:])
			stop += size
		}
		if want := text[r.Start.Index:stop]; r.Content != want {
			return fmt.Errorf("token %d (%s): content %q, text %q", i, tok, r.Content, want)
		}
		if !tok.Valid && !tok.IsInvalid() && !tok.IsLiteral() {
			return fmt.Errorf("token %d (%s): marked invalid", i, tok)
		}
	}
	return nil
}
