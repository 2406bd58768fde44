package diag

import "sync"

type dedupKey struct {
	code   Code
	sev    Severity
	source string
	index  uint32
	msg    string
}

// Dedup wraps another Publisher and suppresses repeats with the same code,
// severity, location and message.
type Dedup struct {
	mu   sync.Mutex
	next Publisher
	seen map[dedupKey]struct{}
}

func NewDedup(next Publisher) *Dedup {
	return &Dedup{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (r *Dedup) Publish(d Diagnostic) {
	key := dedupKey{
		code:   d.Code,
		sev:    d.Severity,
		source: d.Location.Source,
		index:  d.Location.Index,
		msg:    d.Title(),
	}
	r.mu.Lock()
	_, dup := r.seen[key]
	r.seen[key] = struct{}{}
	r.mu.Unlock()
	if dup || r.next == nil {
		return
	}
	r.next.Publish(d)
}
