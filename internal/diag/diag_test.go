package diag_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"alef/internal/diag"
	"alef/internal/source"
)

func sample(sev diag.Severity, col uint32) diag.Diagnostic {
	return diag.New(sev, diag.LexStrayChar, "stray character").
		At(source.At("a.l", 1, col, col-1))
}

func TestSeverityRoundTrip(t *testing.T) {
	for _, s := range []diag.Severity{diag.SevInfo, diag.SevWarning, diag.SevError, diag.SevFatal} {
		got, err := diag.ParseSeverity(s.String())
		if err != nil || got != s {
			t.Fatalf("ParseSeverity(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := diag.ParseSeverity("loud"); err == nil {
		t.Fatalf("expected error for unknown severity")
	}
}

func TestCodeID(t *testing.T) {
	if got := diag.LexBadLiteral.ID(); got != "LEX1002" {
		t.Fatalf("ID = %s", got)
	}
	if got := diag.Code(42).ID(); got != "E0000" {
		t.Fatalf("unknown ID = %s", got)
	}
	if got := diag.Code(1999).Title(); got != "Unknown error" {
		t.Fatalf("fallback title = %s", got)
	}
}

func TestBuilderDoesNotAliasLabels(t *testing.T) {
	base := diag.NewError(diag.LexBadLiteral, "x").WithLabel(1, 1, "a")
	left := base.WithLabel(2, 2, "left")
	right := base.WithLabel(3, 3, "right")
	if left.Labels[1].Msg != "left" || right.Labels[1].Msg != "right" {
		t.Fatalf("builders share label storage: %v / %v", left.Labels, right.Labels)
	}
}

func TestManagerRendersImmediately(t *testing.T) {
	var out bytes.Buffer
	m := diag.NewManager(&out, nil)
	m.Publish(sample(diag.SevError, 3))
	want := "error LEX1001 a.l:1:3 stray character\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
	if !m.HasErrors() || m.Count(diag.SevError) != 1 {
		t.Fatalf("counters not updated")
	}
}

func TestManagerThresholdAndLimit(t *testing.T) {
	var out bytes.Buffer
	m := diag.NewManager(&out, nil)
	m.SetMinSeverity(diag.SevError)
	m.Publish(sample(diag.SevWarning, 1))
	if out.Len() != 0 {
		t.Fatalf("warning below threshold was rendered: %q", out.String())
	}
	m.SetMax(1)
	m.Publish(sample(diag.SevError, 2))
	m.Publish(sample(diag.SevError, 3))
	if n := strings.Count(out.String(), "\n"); n != 1 {
		t.Fatalf("rendered %d diagnostics, want 1", n)
	}
	if m.Suppressed() != 2 || m.Count(diag.SevWarning) != 1 {
		t.Fatalf("suppressed=%d warnings=%d", m.Suppressed(), m.Count(diag.SevWarning))
	}
}

func TestManagerConcurrentPublish(t *testing.T) {
	var out bytes.Buffer
	m := diag.NewManager(&out, nil)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				m.Publish(sample(diag.SevError, uint32(i+1)))
			}
		}()
	}
	wg.Wait()
	if got := strings.Count(out.String(), "\n"); got != 400 {
		t.Fatalf("lines = %d, want 400", got)
	}
}

func TestDefaultIsReplaceable(t *testing.T) {
	bag := diag.NewBag(0)
	prev := diag.SetDefault(bag)
	defer diag.SetDefault(prev)

	diag.Publish(sample(diag.SevInfo, 1))
	if bag.Len() != 1 {
		t.Fatalf("default publisher not used")
	}
}

func TestDefaultFallsBackToShortManager(t *testing.T) {
	prev := diag.SetDefault(nil)
	defer diag.SetDefault(prev)

	if _, ok := diag.Default().(*diag.Manager); !ok {
		t.Fatalf("default = %T, want *diag.Manager", diag.Default())
	}
	// без рендерера Manager пишет короткую однострочную форму
	var out bytes.Buffer
	diag.NewManager(&out, nil).Publish(sample(diag.SevError, 3))
	if got, want := out.String(), diag.FormatShort(sample(diag.SevError, 3))+"\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBagLimitAndSort(t *testing.T) {
	bag := diag.NewBag(3)
	bag.Publish(sample(diag.SevWarning, 9))
	bag.Publish(sample(diag.SevError, 2))
	bag.Publish(sample(diag.SevFatal, 2))
	if bag.Add(sample(diag.SevError, 1)) {
		t.Fatalf("bag accepted a diagnostic past its limit")
	}
	bag.Sort()
	items := bag.Items()
	if items[0].Severity != diag.SevFatal || items[1].Severity != diag.SevError || items[2].Location.Col != 9 {
		t.Fatalf("unexpected order: %v", items)
	}
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Fatalf("HasErrors/HasWarnings")
	}
}

func TestDedupAndTee(t *testing.T) {
	a, b := diag.NewBag(0), diag.NewBag(0)
	p := diag.NewDedup(diag.Tee{a, b})
	p.Publish(sample(diag.SevError, 4))
	p.Publish(sample(diag.SevError, 4))
	p.Publish(sample(diag.SevError, 5))
	if a.Len() != 2 || b.Len() != 2 {
		t.Fatalf("dedup/tee: %d, %d", a.Len(), b.Len())
	}
}

func TestFormatShortList(t *testing.T) {
	diags := []diag.Diagnostic{
		diag.NewWarning(diag.LexPreprocessor, "unremoved preprocessor directive").At(source.At("b.l", 2, 1, 5)),
		diag.NewError(diag.LexBadLiteral, "first line\nsecond").At(source.At("a.l", 1, 1, 0)),
		diag.NewError(diag.LexStrayChar, ""),
	}
	want := "error LEX1001 unknown source stray character\n" +
		"error LEX1002 a.l:1:1 first line second\n" +
		"warning LEX1004 b.l:2:1 unremoved preprocessor directive"
	if got := diag.FormatShortList(diags); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}
