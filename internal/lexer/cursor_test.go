package lexer

import (
	"errors"
	"testing"

	"alef/internal/diag"
	"alef/internal/source"
)

func TestReadFaultGivesUpAfterRetries(t *testing.T) {
	bag := diag.NewBag(0)
	lx := New(source.NewBuffer("r.l", "abc"), Options{Diagnostics: bag})
	cause := errors.New("boom")
	for attempt := 1; attempt < maxReadRetries; attempt++ {
		lx.readFault(cause, attempt)
		if lx.broken {
			t.Fatalf("gave up after %d attempts", attempt)
		}
	}
	lx.readFault(cause, maxReadRetries)
	if !lx.broken {
		t.Fatalf("still reading after %d faults", maxReadRetries)
	}
	if bag.Len() != maxReadRetries {
		t.Fatalf("published %d diagnostics, want %d", bag.Len(), maxReadRetries)
	}
	d := bag.Items()[0]
	if d.Code != diag.LexSourceRead || d.Severity != diag.SevError {
		t.Fatalf("unexpected diagnostic %v", d)
	}
	// сломанный буфер читается как исчерпанный
	if lx.ch() != source.EOF || !lx.atEnd() || !lx.Next().IsEnd() {
		t.Fatalf("broken lexer must behave as exhausted")
	}
}
