package trace

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Level controls how much is recorded.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // fatal conditions only
	LevelPhase        // driver steps and whole passes
	LevelDetail       // plus one span per file
	LevelDebug        // plus every token and diagnostic
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a --trace-level value.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// Allows reports whether events of scope are recorded at l.
func (l Level) Allows(scope Scope) bool {
	switch l {
	case LevelPhase:
		return scope <= ScopePass
	case LevelDetail:
		return scope <= ScopeFile
	case LevelDebug:
		return true
	}
	return false
}

// Scope is the granularity of an event; coarser scopes have lower values.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // one CLI invocation
	ScopePass                    // load or lex of one input
	ScopeFile                    // scanning a whole file
	ScopeToken                   // single tokens and diagnostics
)

var scopeNames = [...]string{"", "driver", "pass", "file", "token"}

func (s Scope) String() string {
	if s > 0 && int(s) < len(scopeNames) {
		return scopeNames[s]
	}
	return "unknown"
}

// Kind tells span boundaries from instant events.
type Kind uint8

const (
	KindBegin Kind = iota + 1
	KindEnd
	KindPoint
)

func (k Kind) String() string {
	switch k {
	case KindBegin:
		return "begin"
	case KindEnd:
		return "end"
	case KindPoint:
		return "point"
	}
	return "unknown"
}

// Attr is a key/value pair attached to an end event. Order is kept.
type Attr struct {
	Key, Value string
}

// Event is one record in the trace.
type Event struct {
	Time   time.Time
	Seq    uint64
	Kind   Kind
	Scope  Scope
	Span   uint64 // 0 for points
	Parent uint64 // 0 at the root
	Name   string
	Detail string
	Attrs  []Attr
}

// Tracer receives events. Implementations must be safe for concurrent use
// because files are lexed in parallel.
type Tracer interface {
	Emit(ev Event)
	Level() Level
	Close() error
}

// Enabled reports whether t records events of scope.
func Enabled(t Tracer, scope Scope) bool {
	return t != nil && t.Level().Allows(scope)
}

type nopTracer struct{}

func (nopTracer) Emit(Event)   {}
func (nopTracer) Level() Level { return LevelOff }
func (nopTracer) Close() error { return nil }

// Nop records nothing.
var Nop Tracer = nopTracer{}

type (
	tracerKey struct{}
	spanKey   struct{}
)

// WithTracer attaches t to ctx; nil attaches Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// FromContext returns the tracer attached to ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx != nil {
		if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
			return t
		}
	}
	return Nop
}

// WithSpan makes s the parent of spans begun under the returned context.
func WithSpan(ctx context.Context, s *Span) context.Context {
	return context.WithValue(ctx, spanKey{}, s.ID())
}

// CurrentSpan returns the id stored by WithSpan, 0 if none.
func CurrentSpan(ctx context.Context) uint64 {
	if ctx != nil {
		if id, ok := ctx.Value(spanKey{}).(uint64); ok {
			return id
		}
	}
	return 0
}
