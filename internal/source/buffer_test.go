package source_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"alef/internal/source"
)

// drain съедает n символов и падает на ошибке чтения.
func drain(t *testing.T, b *source.Buffer, n int) {
	t.Helper()
	for range n {
		if _, err := b.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
}

func TestBufferTracksLineAndColumn(t *testing.T) {
	b := source.NewBuffer("t.l", "ab\ncd")
	drain(t, b, 3)
	loc := b.Location()
	if loc.Line != 2 || loc.Col != 1 || loc.Index != 3 {
		t.Fatalf("after newline: got %d:%d@%d, want 2:1@3", loc.Line, loc.Col, loc.Index)
	}
	drain(t, b, 1)
	if got := b.Location().String(); got != "t.l:2:2" {
		t.Fatalf("location string = %q", got)
	}
}

func TestBufferNextAndPeekAtEOF(t *testing.T) {
	b := source.NewBuffer("t.l", "x")
	if r, _ := b.Peek(1); r != source.EOF {
		t.Fatalf("Peek past end = %q, want EOF", r)
	}
	if r, _ := b.Next(); r != 'x' {
		t.Fatalf("Next = %q, want 'x'", r)
	}
	for range 3 {
		r, err := b.Next()
		if err != nil || r != source.EOF {
			t.Fatalf("Next at end = %q, %v", r, err)
		}
	}
	if !b.AtEnd() {
		t.Fatalf("AtEnd should be true")
	}
}

func TestBufferPeekMultibyte(t *testing.T) {
	b := source.NewBuffer("t.l", "αβγ")
	for k, want := range []rune{'α', 'β', 'γ', source.EOF} {
		if r, err := b.Peek(k); err != nil || r != want {
			t.Fatalf("Peek(%d) = %q, %v; want %q", k, r, err, want)
		}
	}
	drain(t, b, 1)
	if b.Index() != 2 || b.Column() != 2 {
		t.Fatalf("index/col after one rune: %d/%d", b.Index(), b.Column())
	}
}

func TestBufferRangeIncludesEndCharacter(t *testing.T) {
	b := source.NewBuffer("t.l", "foo bar")
	start := b.Location()
	drain(t, b, 2)
	end := b.Location()
	drain(t, b, 3)

	r := b.Range(start, end)
	if r.Content != "foo" {
		t.Fatalf("content = %q, want %q", r.Content, "foo")
	}
	if !r.HasEnd() {
		t.Fatalf("range should carry its end")
	}
	if s, e := r.Columns(); s != 1 || e != 3 {
		t.Fatalf("columns = %d..%d", s, e)
	}
}

func TestBufferRangeToCurrent(t *testing.T) {
	b := source.NewBuffer("t.l", "abcdef")
	drain(t, b, 1)
	start := b.Location()
	drain(t, b, 2)
	r := b.RangeTo(start)
	if r.Content != "bcd" {
		t.Fatalf("content = %q, want %q", r.Content, "bcd")
	}
	if r.End.Col != 4 {
		t.Fatalf("end col = %d, want 4", r.End.Col)
	}
}

func TestBufferRangeFromOrigin(t *testing.T) {
	b := source.NewBuffer("t.l", "xy")
	origin := b.Location()
	drain(t, b, 2)
	if r := b.RangeTo(origin); r.Content != "xy" {
		t.Fatalf("content = %q", r.Content)
	}
}

func TestBufferRangeSentinelIsEmpty(t *testing.T) {
	b := source.NewBuffer("t.l", "xy")
	drain(t, b, 1)
	for _, loc := range []source.Location{source.Unknown(), source.Predeclared()} {
		r := b.RangeTo(loc)
		if r.Content != "" {
			t.Fatalf("%s: content = %q, want empty", loc, r.Content)
		}
	}
}

func TestBufferRangeUnvisitedLocationClamps(t *testing.T) {
	b := source.NewBuffer("t.l", "abc")
	future := source.At("t.l", 1, 3, 2)
	r := b.RangeTo(future)
	if r.Content != "" {
		t.Fatalf("unvisited location should not resolve to index 0, got %q", r.Content)
	}
}

func TestBufferCurrentLine(t *testing.T) {
	b := source.NewBuffer("t.l", "first\nsecond line")
	if got := b.CurrentLine(); got != "first" {
		t.Fatalf("line 1 = %q", got)
	}
	drain(t, b, 8)
	if got := b.CurrentLine(); got != "second line" {
		t.Fatalf("last line without newline = %q", got)
	}
}

func TestBufferReplacesInvalidUTF8(t *testing.T) {
	b := source.NewBuffer("t.l", "a\xff\xfeb\xffc")
	if b.Replacements() != 2 {
		t.Fatalf("replacements = %d, want 2", b.Replacements())
	}
	if b.Flags()&source.FlagReplacedInvalidUTF8 == 0 {
		t.Fatalf("flag not set")
	}
	if r, _ := b.Peek(1); r != '\uFFFD' {
		t.Fatalf("Peek(1) = %q", r)
	}
}

func TestLocationOrderingAndStrings(t *testing.T) {
	a := source.At("f", 1, 1, 0)
	c := source.At("f", 1, 4, 3)
	if !a.Before(c) || c.Before(a) {
		t.Fatalf("ordering by byte offset broken")
	}
	if !source.Unknown().Before(a) {
		t.Fatalf("sentinels sort first")
	}
	if source.Predeclared().String() != "<predeclared>" {
		t.Fatalf("predeclared string")
	}
	if source.Unknown().String() != "<unknown>" || !source.Unknown().IsUnknown() {
		t.Fatalf("unknown location")
	}
}

func TestFromBytesNormalizes(t *testing.T) {
	b, err := source.FromBytes("f.l", []byte("\xEF\xBB\xBFa\r\nb"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if b.Text() != "a\nb" {
		t.Fatalf("text = %q", b.Text())
	}
	if b.Flags()&source.FlagHadBOM == 0 || b.Flags()&source.FlagNormalizedCRLF == 0 {
		t.Fatalf("flags = %b", b.Flags())
	}
}

func TestFromBytesDecodesUTF16(t *testing.T) {
	data := []byte{0xFF, 0xFE, 'h', 0, 'i', 0}
	b, err := source.FromBytes("f.l", data)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if b.Text() != "hi" {
		t.Fatalf("text = %q", b.Text())
	}
	if b.Flags()&source.FlagDecodedUTF16 == 0 {
		t.Fatalf("utf16 flag missing")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.l")
	if err := os.WriteFile(path, []byte("proc main"), 0o600); err != nil {
		t.Fatal(err)
	}
	b, err := source.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if b.Text() != "proc main" || b.Flags()&source.FlagVirtual != 0 {
		t.Fatalf("unexpected buffer %q flags=%b", b.Text(), b.Flags())
	}

	_, err = source.LoadFile(filepath.Join(t.TempDir(), "missing.l"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file error = %v", err)
	}
}

func TestBufferLineOf(t *testing.T) {
	b := source.NewBuffer("t.l", "one\ntwo\nthree")
	drain(t, b, 5)
	at := b.Location() // 'w'
	drain(t, b, 6)
	if got := b.LineOf(at); got != "two" {
		t.Fatalf("LineOf = %q, want %q", got, "two")
	}
	if got := b.LineOf(source.Unknown()); got != "three" {
		t.Fatalf("LineOf(unknown) = %q, want current line", got)
	}
}
