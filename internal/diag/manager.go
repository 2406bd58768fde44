package diag

import (
	"io"
	"os"
	"sync"
)

// Renderer turns one diagnostic into text.
type Renderer interface {
	Render(w io.Writer, d Diagnostic) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(w io.Writer, d Diagnostic) error

func (f RendererFunc) Render(w io.Writer, d Diagnostic) error { return f(w, d) }

// Manager renders each published diagnostic immediately. One mutex guards
// the writer, the severity threshold and the counters, so any number of
// scanners may publish concurrently.
type Manager struct {
	mu         sync.Mutex
	w          io.Writer
	r          Renderer
	min        Severity
	max        int
	counts     [sevCount]int
	shown      int
	suppressed int
	err        error
}

// NewManager creates a Manager writing to w. A nil renderer selects the
// short single-line form.
func NewManager(w io.Writer, r Renderer) *Manager {
	if r == nil {
		r = RendererFunc(writeShort)
	}
	return &Manager{w: w, r: r}
}

func (m *Manager) Publish(d Diagnostic) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d.Severity < sevCount {
		m.counts[d.Severity]++
	}
	if d.Severity < m.min || (m.max > 0 && m.shown >= m.max) {
		m.suppressed++
		return
	}
	m.shown++
	if err := m.r.Render(m.w, d); err != nil && m.err == nil {
		m.err = err
	}
}

// SetMinSeverity sets the warning-level threshold: diagnostics below it are
// counted but not rendered.
func (m *Manager) SetMinSeverity(s Severity) {
	m.mu.Lock()
	m.min = s
	m.mu.Unlock()
}

func (m *Manager) MinSeverity() Severity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.min
}

// SetMax limits how many diagnostics are rendered; 0 means no limit.
func (m *Manager) SetMax(n int) {
	m.mu.Lock()
	m.max = max(n, 0)
	m.mu.Unlock()
}

// Count returns how many diagnostics of sev were published.
func (m *Manager) Count(sev Severity) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sev >= sevCount {
		return 0
	}
	return m.counts[sev]
}

// HasErrors reports whether any Error or Fatal diagnostic was published,
// rendered or not.
func (m *Manager) HasErrors() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[SevError]+m.counts[SevFatal] > 0
}

// Suppressed returns how many diagnostics were filtered by the threshold or
// the limit.
func (m *Manager) Suppressed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.suppressed
}

// Err returns the first write error, if any. Publish itself never fails.
func (m *Manager) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

var (
	defaultMu  sync.Mutex
	defaultPub Publisher
)

// Default returns the process-wide publisher, creating a stderr Manager
// with the short renderer on first use.
func Default() Publisher {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultPub == nil {
		defaultPub = NewManager(os.Stderr, nil)
	}
	return defaultPub
}

// SetDefault installs p as the process-wide publisher and returns the
// previous one. A nil p resets to the lazily created stderr Manager.
func SetDefault(p Publisher) Publisher {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultPub
	defaultPub = p
	return prev
}

// Publish sends d to Default().
func Publish(d Diagnostic) {
	Default().Publish(d)
}
