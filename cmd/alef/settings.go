package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"alef/internal/config"
	"alef/internal/diag"
	"alef/internal/diagfmt"
)

// settings is the project file merged with the command line.
type settings struct {
	cfg      config.Config
	path     string // project file, empty when none was found
	useColor bool
	quiet    bool
	timings  bool
}

// loadSettings reads the project file named by --config, or the one found
// above the first input, and applies explicitly set flags on top.
func loadSettings(cmd *cobra.Command, inputs []string) (*settings, error) {
	pf := cmd.Root().PersistentFlags()
	s := &settings{cfg: config.Default()}

	explicit, _ := pf.GetString("config")
	switch {
	case explicit != "":
		p, err := config.Load(explicit)
		if err != nil {
			return nil, err
		}
		s.cfg, s.path = p.Config, p.Path
	default:
		start := "."
		if len(inputs) > 0 && inputs[0] != "-" {
			start = filepath.Dir(inputs[0])
		}
		p, ok, err := config.Discover(start)
		if err != nil {
			return nil, err
		}
		if ok {
			s.cfg, s.path = p.Config, p.Path
		}
	}

	d := &s.cfg.Diagnostics
	if pf.Changed("theme") {
		d.Theme, _ = pf.GetString("theme")
	}
	if pf.Changed("color") {
		d.Color, _ = pf.GetString("color")
	}
	if pf.Changed("min-severity") {
		d.MinSeverity, _ = pf.GetString("min-severity")
	}
	if pf.Changed("max-diagnostics") {
		d.Max, _ = pf.GetInt("max-diagnostics")
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	s.quiet, _ = pf.GetBool("quiet")
	s.timings, _ = pf.GetBool("timings")
	switch strings.ToLower(d.Color) {
	case "on":
		s.useColor = true
	case "off":
		s.useColor = false
	default:
		s.useColor = isTerminal(os.Stderr)
	}
	return s, nil
}

// manager builds the diagnostic manager that renders to w.
func (s *settings) manager(cmd *cobra.Command) (*diag.Manager, error) {
	theme, err := diagfmt.ThemeByName(s.cfg.Diagnostics.Theme)
	if err != nil {
		return nil, err
	}
	minSev, err := diag.ParseSeverity(s.cfg.Diagnostics.MinSeverity)
	if err != nil {
		return nil, err
	}
	r := &diagfmt.Renderer{Theme: theme, Width: s.cfg.Diagnostics.Width, Color: s.useColor}
	m := diag.NewManager(cmd.ErrOrStderr(), r)
	m.SetMinSeverity(minSev)
	m.SetMax(s.cfg.Diagnostics.Max)
	return m, nil
}
