package diag

import (
	"sort"
	"sync"
)

// Bag collects diagnostics instead of printing them.
type Bag struct {
	mu    sync.Mutex
	items []Diagnostic
	max   int
}

// NewBag creates a Bag holding at most max diagnostics; 0 means no limit.
func NewBag(max int) *Bag {
	return &Bag{max: max}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если достигнут лимит.
func (b *Bag) Add(d Diagnostic) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Publish(d Diagnostic) { b.Add(d) }

func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Items возвращает копию накопленных диагностик.
func (b *Bag) Items() []Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	return b.any(SevError)
}

// HasWarnings возвращает true, если есть хотя бы одна диагностика с Severity >= Warning
func (b *Bag) HasWarnings() bool {
	return b.any(SevWarning)
}

func (b *Bag) any(floor Severity) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.items {
		if b.items[i].Severity >= floor {
			return true
		}
	}
	return false
}

// Replay publishes every collected diagnostic to p in order.
func (b *Bag) Replay(p Publisher) {
	for _, d := range b.Items() {
		p.Publish(d)
	}
}

// Sort сортирует диагностики по: source, offset, severity (desc), code (asc)
// для стабильного порядка вывода.
func (b *Bag) Sort() {
	b.mu.Lock()
	defer b.mu.Unlock()
	sort.SliceStable(b.items, func(i, j int) bool {
		li, lj := b.items[i].Location, b.items[j].Location
		if li.Source != lj.Source {
			return li.Source < lj.Source
		}
		if li.Before(lj) || lj.Before(li) {
			return li.Before(lj)
		}
		di, dj := b.items[i], b.items[j]
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
