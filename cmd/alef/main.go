package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"alef/internal/version"
)

// errDiagnostics signals that errors were already reported as
// diagnostics; main only sets the exit code.
var errDiagnostics = errors.New("errors were reported")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "alef",
		Short:         "Alef language front end",
		Long:          `alef scans Alef source files and reports lexical diagnostics`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 0, "maximum number of diagnostics to show (0 = unlimited)")
	pf.String("min-severity", "info", "hide diagnostics below this severity (info|warning|error|fatal)")
	pf.String("theme", "unicode", "diagnostic theme (unicode|ascii)")
	pf.String("config", "", "path to alef.toml or alef.yaml (default: search upwards)")
	pf.String("trace", "", "write trace events to a file, or - for stderr")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.String("cpu-profile", "", "write a CPU profile to this file")
	pf.String("mem-profile", "", "write a heap profile to this file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to this file")

	root.AddCommand(newLexCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(os.Stderr, "alef: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
