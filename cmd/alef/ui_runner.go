package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"alef/internal/diag"
	"alef/internal/driver"
	"alef/internal/ui"
)

// progressWanted resolves --ui. "auto" shows progress only when several
// files are lexed with -s on a terminal, since the token stream and the
// view would otherwise fight over stdout.
func progressWanted(value string, files int, suppressed bool) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return files > 1 && suppressed && isTerminal(os.Stdout), nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

type lexOutcome struct {
	results []*driver.Result
	err     error
}

// runLexWithUI lexes files behind a progress view. Diagnostics are held
// back while the view owns the terminal and replayed into pub afterwards.
func runLexWithUI(ctx context.Context, out io.Writer, files []string, opts driver.Options, pub diag.Publisher) ([]*driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan lexOutcome, 1)
	held := diag.NewBag(0)

	go func() {
		o := opts
		o.Progress = driver.ChannelSink(events)
		o.Diagnostics = held
		res, err := driver.LexFiles(ctx, files, o)
		outcomeCh <- lexOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("lexing", files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// представление могло закрыться раньше (ctrl+c): дочитываем события,
	// чтобы LexFiles не встал на полном канале
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh

	held.Sort()
	held.Replay(pub)
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
