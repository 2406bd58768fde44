package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"alef/internal/diag"
	"alef/internal/driver"
	"alef/internal/observ"
	"alef/internal/token"
)

func writeSource(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLexSource(t *testing.T) {
	bag := diag.NewBag(0)
	res := driver.LexSource(context.Background(), "m.l", "a /* c */ 08", driver.Options{
		Diagnostics: bag,
		Comments:    true,
	})
	if len(res.Tokens) != 3 || !res.Tokens[2].IsEnd() {
		t.Fatalf("tokens = %v", res.Tokens)
	}
	if len(res.Comments) != 1 || res.Comments[0].Text != "/* c */" {
		t.Fatalf("comments = %v", res.Comments)
	}
	if res.Errors != 1 || bag.Len() != 1 {
		t.Fatalf("errors = %d, bag = %d", res.Errors, bag.Len())
	}
}

func TestLexFileAndTimer(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.l", "proc main() {}\r\n")
	timer := observ.NewTimer()
	res, err := driver.Lex(context.Background(), path, driver.Options{Diagnostics: diag.Nop{}, Timer: timer})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Tokens[0].IsKeyword(token.KwProc) {
		t.Fatalf("first token = %s", res.Tokens[0])
	}
	if n := len(timer.Report().Phases); n != 2 {
		t.Fatalf("timer phases = %d, want load and lex", n)
	}
}

func TestLexMissingFile(t *testing.T) {
	bag := diag.NewBag(0)
	_, err := driver.Lex(context.Background(), filepath.Join(t.TempDir(), "nope.l"), driver.Options{Diagnostics: bag})
	if err == nil {
		t.Fatalf("expected load error")
	}
	if !bag.HasErrors() {
		t.Fatalf("load failure was not published")
	}
}

func TestLexFilesKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"c.l", "a.l", "b.l", "d.l"} {
		paths = append(paths, writeSource(t, dir, name, "x"+name[:1]))
	}
	paths = append(paths, filepath.Join(dir, "missing.l"))

	var mu sync.Mutex
	events := map[driver.Status]int{}
	sink := driver.ProgressFunc(func(ev driver.Event) {
		mu.Lock()
		events[ev.Status]++
		mu.Unlock()
	})

	results, err := driver.LexFiles(context.Background(), paths, driver.Options{
		Diagnostics: diag.NewBag(0),
		Jobs:        2,
		Progress:    sink,
	})
	if err != nil {
		t.Fatal(err)
	}
	for i, name := range []string{"c", "a", "b", "d"} {
		if got := results[i].Tokens[0].Text; got != "x"+name {
			t.Fatalf("result %d = %q, want x%s", i, got, name)
		}
	}
	if results[4].Err == nil {
		t.Fatalf("missing file did not report an error")
	}
	if !driver.HasErrors(results) {
		t.Fatalf("HasErrors = false")
	}
	if events[driver.StatusQueued] != 5 || events[driver.StatusDone] != 4 || events[driver.StatusError] != 1 {
		t.Fatalf("events = %v", events)
	}
}

func TestLexFilesCancelled(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.l", "a")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := driver.LexFiles(ctx, []string{path}, driver.Options{Diagnostics: diag.Nop{}}); err == nil {
		t.Fatalf("expected cancellation error")
	}
}
