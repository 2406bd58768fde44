package prof

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSessionWritesProfiles(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		CPU:   filepath.Join(dir, "cpu.out"),
		Mem:   filepath.Join(dir, "mem.out"),
		Trace: filepath.Join(dir, "trace.out"),
	}
	s, err := Start(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
	for _, p := range []string{cfg.CPU, cfg.Mem, cfg.Trace} {
		if info, err := os.Stat(p); err != nil || info.Size() == 0 {
			t.Fatalf("%s: %v", p, err)
		}
	}
}

func TestStartFailsCleanly(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "cpu.out")
	if _, err := Start(Config{CPU: missing}); err == nil {
		t.Fatalf("expected error")
	}
	// профилировщик не должен остаться запущенным
	s, err := Start(Config{CPU: filepath.Join(t.TempDir(), "cpu.out")})
	if err != nil {
		t.Fatalf("cpu profiler left running: %v", err)
	}
	_ = s.Stop()
}
