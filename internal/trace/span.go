package trace

import (
	"sync/atomic"
	"time"
)

var spanIDs atomic.Uint64

// Span brackets an operation with begin and end events. A span begun on a
// tracer that does not record its scope is inert; all methods are safe on it.
type Span struct {
	tracer  Tracer
	id      uint64
	parent  uint64
	scope   Scope
	name    string
	started time.Time
	attrs   []Attr
}

// Begin opens a span under parent (0 for a root span).
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if !Enabled(t, scope) {
		return &Span{}
	}
	s := &Span{
		tracer:  t,
		id:      spanIDs.Add(1),
		parent:  parent,
		scope:   scope,
		name:    name,
		started: time.Now(),
	}
	t.Emit(Event{Time: s.started, Kind: KindBegin, Scope: scope, Span: s.id, Parent: parent, Name: name})
	return s
}

// With adds an attribute reported on the end event.
func (s *Span) With(key, value string) *Span {
	if s != nil && s.tracer != nil {
		s.attrs = append(s.attrs, Attr{Key: key, Value: value})
	}
	return s
}

// End closes the span and returns how long it was open.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.tracer == nil {
		return 0
	}
	now := time.Now()
	s.tracer.Emit(Event{
		Time:   now,
		Kind:   KindEnd,
		Scope:  s.scope,
		Span:   s.id,
		Parent: s.parent,
		Name:   s.name,
		Detail: detail,
		Attrs:  s.attrs,
	})
	return now.Sub(s.started)
}

func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Point records an instant event under parent.
func Point(t Tracer, scope Scope, name, detail string, parent uint64) {
	if !Enabled(t, scope) {
		return
	}
	t.Emit(Event{Time: time.Now(), Kind: KindPoint, Scope: scope, Parent: parent, Name: name, Detail: detail})
}
