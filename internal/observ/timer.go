// Package observ measures how long the phases of an `alef` run take.
package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase is one measured step.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer collects phases. It is safe for concurrent use, and a nil *Timer
// silently records nothing.
type Timer struct {
	mu     sync.Mutex
	phases []Phase
}

func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 8)} }

// Begin starts a phase and returns its index for End.
func (t *Timer) Begin(name string) int {
	if t == nil {
		return -1
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// End finishes the phase at idx. Unknown indexes are ignored.
func (t *Timer) End(idx int, note string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.Start)
	p.Note = note
}

// Track begins a phase and returns the function that ends it.
func (t *Timer) Track(name string) func(note string) {
	idx := t.Begin(name)
	return func(note string) { t.End(idx, note) }
}

// PhaseReport is a phase flattened for printing or serialization.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report holds all phases plus their wall-clock span. Phases of parallel
// files overlap, so TotalMS is measured from the first start to the last
// end rather than summed.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	if t == nil {
		return Report{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	first := t.phases[0].Start
	var last time.Time
	for i, p := range t.phases {
		if p.Start.Before(first) {
			first = p.Start
		}
		if end := p.Start.Add(p.Dur); end.After(last) {
			last = end
		}
		report.Phases[i] = PhaseReport{Name: p.Name, DurationMS: millis(p.Dur), Note: p.Note}
	}
	report.TotalMS = millis(last.Sub(first))
	return report
}

// Summary renders the report as an aligned table.
func (t *Timer) Summary() string {
	report := t.Report()
	width := len("total")
	for _, p := range report.Phases {
		width = max(width, len(p.Name))
	}
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&b, "  %-*s %8.2f ms", width, p.Name, p.DurationMS)
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-*s %8.2f ms\n", width, "total", report.TotalMS)
	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
