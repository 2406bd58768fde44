package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestParseTOML(t *testing.T) {
	cfg, err := Parse("alef.toml", []byte(`
[diagnostics]
theme = "ascii"
max = 5

[lex]
format = "json"
comments = true
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Diagnostics.Theme != "ascii" || cfg.Diagnostics.Max != 5 {
		t.Fatalf("diagnostics = %+v", cfg.Diagnostics)
	}
	// незаданные поля остаются по умолчанию
	if cfg.Diagnostics.Width != 80 || cfg.Diagnostics.Color != "auto" {
		t.Fatalf("defaults lost: %+v", cfg.Diagnostics)
	}
	if cfg.Lex.Format != "json" || !cfg.Lex.Comments {
		t.Fatalf("lex = %+v", cfg.Lex)
	}
}

func TestParseYAML(t *testing.T) {
	cfg, err := Parse("alef.yaml", []byte("diagnostics:\n  min_severity: warning\nlex:\n  format: pretty\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Diagnostics.MinSeverity != "warning" || cfg.Lex.Format != "pretty" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if _, err := Parse("alef.yml", nil); err != nil {
		t.Fatalf("empty YAML: %v", err)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name, file, body, want string
	}{
		{"unknown toml key", "alef.toml", "[lex]\nfromat = \"json\"\n", "unknown keys"},
		{"unknown yaml key", "alef.yaml", "lex:\n  fromat: json\n", "failed to parse YAML"},
		{"bad theme", "alef.toml", "[diagnostics]\ntheme = \"neon\"\n", "theme"},
		{"bad format", "alef.toml", "[lex]\nformat = \"xml\"\n", "format"},
		{"narrow width", "alef.toml", "[diagnostics]\nwidth = 3\n", "width"},
		{"bad syntax", "alef.toml", "[diagnostics\n", "failed to parse TOML"},
		{"bad extension", "alef.ini", "", "unsupported"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.file, []byte(tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "alef.toml"), "[lex]\nformat = \"dump\"\n")
	deep := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatal(err)
	}

	p, ok, err := Discover(deep)
	if err != nil || !ok {
		t.Fatalf("Discover: ok=%v err=%v", ok, err)
	}
	if p.Root != root || p.Config.Lex.Format != "dump" {
		t.Fatalf("project = %+v", p)
	}
}

func TestDiscoverPrefersTOML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "alef.yaml"), "lex:\n  format: json\n")
	writeFile(t, filepath.Join(root, "alef.toml"), "[lex]\nformat = \"pretty\"\n")
	p, _, err := Discover(root)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(p.Path) != "alef.toml" {
		t.Fatalf("picked %s", p.Path)
	}
}

func TestDiscoverNone(t *testing.T) {
	p, ok, err := Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	// выше TempDir файла быть не должно, но не полагаемся на это
	if !ok && p.Config != Default() {
		t.Fatalf("missing project should carry defaults: %+v", p.Config)
	}
}
