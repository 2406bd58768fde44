package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"alef/internal/trace"
)

// setupTracing attaches a tracer built from --trace, --trace-level and
// --trace-format to the command context. force is a lower bound on the
// level; --debug passes LevelDebug.
func setupTracing(cmd *cobra.Command, force trace.Level) (func(), error) {
	pf := cmd.Root().PersistentFlags()
	output, _ := pf.GetString("trace")
	levelFlag, _ := pf.GetString("trace-level")
	formatFlag, _ := pf.GetString("trace-format")

	level, err := trace.ParseLevel(levelFlag)
	if err != nil {
		return nil, err
	}
	format, err := trace.ParseFormat(formatFlag)
	if err != nil {
		return nil, err
	}

	tracer, err := trace.New(trace.Config{Level: max(level, force), Format: format, Path: output})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))
	return func() {
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: %v\n", err)
		}
	}, nil
}
