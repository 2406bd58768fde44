package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"alef/internal/diag"
	"alef/internal/source"
)

func typeMismatch() diag.Diagnostic {
	return diag.NewError(diag.LexBadLiteral, "incompatible types").
		At(source.At("bad.l", 10, 7, 0)).
		WithContext(`x = 4 + "this_is_a_str";`).
		WithLabel(5, 5, "int").
		WithLabel(7, 7, "op").
		WithLabel(9, 23, "string").
		WithReason("operands must coerce to the same type.").
		WithHelp("convert the integer first.")
}

func TestRenderStackedLabels(t *testing.T) {
	r := NewRenderer(false)
	got := r.RenderString(typeMismatch())
	want := strings.Join([]string{
		"",
		"error LEX1002: incompatible types",
		"",
		"× operands must coerce to the same type.",
		"",
		"    ╭─ bad.l:10:7",
		" 10 │ x = 4 + \"this_is_a_str\";",
		"    ·     ┬ ┬ ───────┬───────",
		"    ·     │ │        ╰─ string",
		"    ·     │ ╰─ op",
		"    ·     ╰─ int",
		"    ╰───",
		"  help: convert the integer first.",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("render mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderLabelOrderIndependent(t *testing.T) {
	d := typeMismatch()
	d.Labels = []diag.LabeledSpan{d.Labels[2], d.Labels[0], d.Labels[1]}
	r := NewRenderer(false)
	if got, want := r.RenderString(d), r.RenderString(typeMismatch()); got != want {
		t.Fatalf("unsorted labels render differently:\n%s\nvs\n%s", got, want)
	}
}

func TestRenderSkipsLabelsWithoutMessage(t *testing.T) {
	d := diag.NewError(diag.LexStrayChar, "").
		At(source.At("a.l", 1, 3, 2)).
		WithContext("a @ b").
		WithLabel(1, 1, "").
		WithLabel(3, 3, "here")
	got := NewRenderer(false).RenderString(d)
	if !strings.Contains(got, "   ·   ┬\n   ·   ╰─ here\n") {
		t.Fatalf("unexpected label rows:\n%s", got)
	}
	if strings.Count(got, "╰─ ") != 1 {
		t.Fatalf("unlabelled span consumed a row:\n%s", got)
	}
}

func TestRenderKeepsTabs(t *testing.T) {
	d := diag.NewError(diag.LexStrayChar, "").
		At(source.At("a.l", 2, 2, 5)).
		WithContext("\t@").
		WithLabel(2, 2, "x")
	got := NewRenderer(false).RenderString(d)
	if !strings.Contains(got, " · \t┬\n") || !strings.Contains(got, " · \t╰─ x\n") {
		t.Fatalf("tab not preserved under label:\n%q", got)
	}
}

func TestRenderMultiLineContext(t *testing.T) {
	// вторая строка начинается с колонки 4 в общем пространстве
	d := diag.NewError(diag.LexUnterminatedBlock, "").
		At(source.At("a.l", 7, 1, 0)).
		WithContext("abc\n\nde").
		WithLabel(1, 3, "first").
		WithLabel(5, 5, "second")
	got := NewRenderer(false).RenderString(d)
	want := strings.Join([]string{
		"   ╭─ a.l:7:1",
		" 7 │ abc",
		"   · ─┬─",
		"   ·  ╰─ first",
		" 8 │ de",
		"   ·  ┬",
		"   ·  ╰─ second",
		"   ╰───",
	}, "\n")
	if !strings.Contains(got, want) {
		t.Fatalf("context mismatch\n got:\n%s\nwant block:\n%s", got, want)
	}
}

func TestRenderOutOfRangeLabels(t *testing.T) {
	d := diag.NewError(diag.LexStrayChar, "").
		At(source.At("a.l", 1, 1, 0)).
		WithContext("ab").
		WithLabel(2, 40, "too long").
		WithLabel(0, -3, "backwards")
	// не должно паниковать
	got := NewRenderer(false).RenderString(d)
	if !strings.Contains(got, " 1 │ ab\n") {
		t.Fatalf("line missing:\n%s", got)
	}
}

func TestRenderNoContext(t *testing.T) {
	r := NewRenderer(false)
	got := r.RenderString(diag.NewError(diag.LexSourceRead, "boom"))
	if !strings.HasSuffix(got, "\nunknown source\n") {
		t.Fatalf("want unknown source, got:\n%s", got)
	}
	got = r.RenderString(diag.NewError(diag.LexSourceRead, "boom").At(source.At("f.l", 3, 4, 9)))
	if !strings.HasSuffix(got, "\nf.l:3:4\n") {
		t.Fatalf("want bare location, got:\n%s", got)
	}
}

func TestRenderWarningWord(t *testing.T) {
	d := diag.NewWarning(diag.LexPreprocessor, "").WithReason("ignored")
	got := NewRenderer(false).RenderString(d)
	if !strings.HasPrefix(got, "\nwarning LEX1004: ") {
		t.Fatalf("header: %q", got)
	}
	if !strings.Contains(got, "\n⚠ ignored\n") {
		t.Fatalf("glyph: %q", got)
	}
}

func TestRenderWrapsReasonAndHelp(t *testing.T) {
	long := strings.Repeat("word ", 40)
	d := diag.NewError(diag.LexBadLiteral, "").WithReason(long).WithHelp(long)
	got := NewRenderer(false).RenderString(d)
	lines := strings.Split(got, "\n")
	var reason, help int
	for _, line := range lines {
		if n := len([]rune(line)); n > DefaultWidth {
			t.Fatalf("line wider than %d: %q", DefaultWidth, line)
		}
		switch {
		case strings.HasPrefix(line, "  help: "):
			help++
		case strings.HasPrefix(line, "  word"):
			reason++
		}
	}
	if help != 1 || reason < 3 {
		t.Fatalf("unexpected wrapping (help=%d continuation=%d):\n%s", help, reason, got)
	}
}

func TestRenderRelated(t *testing.T) {
	note := diag.New(diag.SevInfo, diag.LexInfo, "first seen here")
	d := diag.NewError(diag.LexStrayChar, "stray").WithRelated(note)
	got := NewRenderer(false).RenderString(d)
	if !strings.Contains(got, "\ninfo LEX1000: first seen here\n") {
		t.Fatalf("related missing:\n%s", got)
	}
	if strings.Index(got, "stray") > strings.Index(got, "first seen here") {
		t.Fatalf("related rendered before parent:\n%s", got)
	}
}

func TestRenderColor(t *testing.T) {
	got := NewRenderer(true).RenderString(typeMismatch())
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI escapes in colored output")
	}
	plain := NewRenderer(false).RenderString(typeMismatch())
	if strings.Contains(plain, "\x1b[") {
		t.Fatalf("unexpected ANSI escapes in plain output")
	}
}

func TestASCIITheme(t *testing.T) {
	r := &Renderer{Theme: ASCIITheme(), Width: DefaultWidth}
	got := r.RenderString(typeMismatch())
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, " 10 ") {
			continue
		}
		for _, c := range line {
			if c > 0x7f {
				t.Fatalf("non-ASCII %q in %q", c, line)
			}
		}
	}
	if _, err := ThemeByName("neon"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestManagerWithRenderer(t *testing.T) {
	var buf bytes.Buffer
	m := diag.NewManager(&buf, NewRenderer(false))
	m.Publish(typeMismatch())
	if !strings.Contains(buf.String(), "╰─ string") {
		t.Fatalf("manager did not use renderer:\n%s", buf.String())
	}
}
