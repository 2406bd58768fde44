package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"alef/internal/diag"
	"alef/internal/diagfmt"
	"alef/internal/driver"
	"alef/internal/observ"
	"alef/internal/trace"
)

func newLexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lex [flags] file.l...",
		Short: "Scan Alef source files and print their tokens",
		Long: `Lex scans each file to its end, reporting lexical diagnostics on stderr
and printing the token stream on stdout. Use - to read standard input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runLex,
	}
	f := cmd.Flags()
	f.Bool("debug", false, "trace every token and diagnostic to stderr")
	f.BoolP("suppress-output", "s", false, "do not print tokens")
	f.String("format", "", "token output format (plain|pretty|json|msgpack|dump)")
	f.Bool("comments", false, "print collected comments after the tokens")
	f.String("ui", "auto", "show progress UI for several files (auto|on|off)")
	f.Int("jobs", 0, "max parallel files (0 = GOMAXPROCS)")
	f.String("diag-file", "", "also write diagnostics, one per line, to this file")
	return cmd
}

func runLex(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	debug, _ := f.GetBool("debug")
	suppress, _ := f.GetBool("suppress-output")
	jobs, _ := f.GetInt("jobs")
	uiValue, _ := f.GetString("ui")

	formatValue := s.cfg.Lex.Format
	if f.Changed("format") {
		formatValue, _ = f.GetString("format")
	}
	format, err := diagfmt.ParseTokenFormat(formatValue)
	if err != nil {
		return err
	}
	comments := s.cfg.Lex.Comments
	if f.Changed("comments") {
		comments, _ = f.GetBool("comments")
	}
	showProgress, err := progressWanted(uiValue, len(args), suppress)
	if err != nil {
		return err
	}

	force := trace.LevelOff
	if debug {
		force = trace.LevelDebug
	}
	cleanup, err := setupTracing(cmd, force)
	if err != nil {
		return err
	}
	defer cleanup()
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	manager, err := s.manager(cmd)
	if err != nil {
		return err
	}
	// повторная подача одного файла не должна удваивать диагностики
	var sink diag.Publisher = manager
	diagFile, _ := f.GetString("diag-file")
	var recorded *diag.Bag
	if diagFile != "" {
		recorded = diag.NewBag(0)
		sink = diag.Tee{manager, recorded}
	}
	pub := diag.NewDedup(sink)
	prev := diag.SetDefault(pub)
	defer diag.SetDefault(prev)

	var timer *observ.Timer
	if s.timings {
		timer = observ.NewTimer()
	}
	opts := driver.Options{
		Diagnostics: pub,
		Comments:    comments || format == diagfmt.FormatJSON || format == diagfmt.FormatMsgpack,
		Jobs:        jobs,
		Timer:       timer,
	}

	ctx := cmd.Context()
	var results []*driver.Result
	switch {
	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		results = []*driver.Result{driver.LexSource(ctx, "<stdin>", string(data), opts)}
	case showProgress:
		results, err = runLexWithUI(ctx, os.Stdout, args, opts, pub)
	default:
		results, err = driver.LexFiles(ctx, args, opts)
	}
	if err != nil {
		return err
	}

	if !suppress {
		out := cmd.OutOrStdout()
		for i, res := range results {
			if res.Err != nil {
				continue
			}
			if err := printResult(out, res, format, comments, len(results) > 1, i); err != nil {
				return err
			}
		}
	}

	if recorded != nil {
		if err := writeDiagFile(diagFile, recorded); err != nil {
			return err
		}
	}
	if timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	if !s.quiet {
		if n := manager.Suppressed(); n > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d diagnostic(s) not shown\n", n)
		}
		errs := manager.Count(diag.SevError) + manager.Count(diag.SevFatal)
		if warns := manager.Count(diag.SevWarning); errs+warns > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d error(s), %d warning(s)\n", errs, warns)
		}
	}
	if err := manager.Err(); err != nil {
		return fmt.Errorf("failed to write diagnostics: %w", err)
	}
	if manager.HasErrors() || driver.HasErrors(results) {
		return errDiagnostics
	}
	return nil
}

func printResult(out io.Writer, res *driver.Result, format diagfmt.TokenFormat, comments, many bool, i int) error {
	textual := format == diagfmt.FormatPlain || format == diagfmt.FormatPretty
	if many && textual {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "==> %s <==\n", res.Path)
	}
	if err := diagfmt.FormatTokens(out, format, res.Path, res.Tokens, res.Comments); err != nil {
		return err
	}
	if comments && textual {
		return diagfmt.FormatComments(out, res.Comments)
	}
	return nil
}

// writeDiagFile stores every recorded diagnostic in the short form, sorted
// by position so parallel runs produce identical files.
func writeDiagFile(path string, bag *diag.Bag) error {
	text := diag.FormatShortList(bag.Items())
	if bag.Len() > 0 {
		text += "\n"
	}
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return fmt.Errorf("failed to write diagnostics file: %w", err)
	}
	return nil
}
