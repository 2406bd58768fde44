package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Format is the trace encoding.
type Format uint8

const (
	FormatAuto Format = iota // by output file extension
	FormatText
	FormatNDJSON
)

// ParseFormat converts a --trace-format value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	}
	return FormatAuto, fmt.Errorf("invalid trace format: %q (expected: auto|text|ndjson)", s)
}

// Config describes where and how much to trace.
type Config struct {
	Level  Level
	Format Format
	// Output wins over Path. An empty Path or "-" means stderr.
	Output io.Writer
	Path   string
}

// New builds a tracer from cfg; LevelOff yields Nop.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	format := cfg.Format
	if format == FormatAuto {
		format = FormatText
		if strings.HasSuffix(cfg.Path, ".ndjson") || strings.HasSuffix(cfg.Path, ".jsonl") {
			format = FormatNDJSON
		}
	}

	w, closer := cfg.Output, io.Closer(nil)
	switch {
	case w != nil:
	case cfg.Path == "" || cfg.Path == "-":
		w = os.Stderr
	default:
		// #nosec G304 -- path comes from the --trace flag
		f, err := os.Create(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open trace output: %w", err)
		}
		w, closer = f, f
	}
	st := NewStreamTracer(w, cfg.Level, format)
	st.closer = closer
	return st, nil
}

// StreamTracer writes each event as soon as it is emitted.
type StreamTracer struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
	level  Level
	format Format
	start  time.Time
	seq    uint64
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	return &StreamTracer{w: w, level: level, format: format, start: time.Now()}
}

func (t *StreamTracer) Level() Level { return t.level }

func (t *StreamTracer) Emit(ev Event) {
	if !t.level.Allows(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	ev.Seq = t.seq
	var line []byte
	if t.format == FormatNDJSON {
		line = encodeJSON(ev)
	} else {
		line = encodeText(ev, t.start)
	}
	// ошибки записи трассы не должны ломать лексинг
	_, _ = t.w.Write(line) //nolint:errcheck
}

// Close closes the output file opened by New. Writers passed in by the
// caller are left open.
func (t *StreamTracer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closer == nil {
		return nil
	}
	err := t.closer.Close()
	t.closer = nil
	return err
}

type jsonEvent struct {
	Time   string            `json:"time"`
	Seq    uint64            `json:"seq"`
	Kind   string            `json:"kind"`
	Scope  string            `json:"scope"`
	Span   uint64            `json:"span_id,omitempty"`
	Parent uint64            `json:"parent_id,omitempty"`
	Name   string            `json:"name"`
	Detail string            `json:"detail,omitempty"`
	Attrs  map[string]string `json:"attrs,omitempty"`
}

func encodeJSON(ev Event) []byte {
	j := jsonEvent{
		Time:   ev.Time.Format(time.RFC3339Nano),
		Seq:    ev.Seq,
		Kind:   ev.Kind.String(),
		Scope:  ev.Scope.String(),
		Span:   ev.Span,
		Parent: ev.Parent,
		Name:   ev.Name,
		Detail: ev.Detail,
	}
	if len(ev.Attrs) > 0 {
		j.Attrs = make(map[string]string, len(ev.Attrs))
		for _, a := range ev.Attrs {
			j.Attrs[a.Key] = a.Value
		}
	}
	data, err := json.Marshal(j)
	if err != nil {
		data = fmt.Appendf(nil, `{"name":%q,"error":%q}`, ev.Name, err.Error())
	}
	return append(data, '\n')
}

// encodeText renders "[elapsed] → name (detail) {k=v, ...}". Nested events
// are indented one step.
func encodeText(ev Event, start time.Time) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%9.3fms] ", float64(ev.Time.Sub(start).Microseconds())/1000)
	if ev.Parent > 0 {
		sb.WriteString("  ")
	}
	switch ev.Kind {
	case KindBegin:
		sb.WriteString("→ ")
	case KindEnd:
		sb.WriteString("← ")
	default:
		sb.WriteString("• ")
	}
	sb.WriteString(ev.Name)
	if ev.Detail != "" {
		fmt.Fprintf(&sb, " (%s)", ev.Detail)
	}
	if len(ev.Attrs) > 0 {
		sb.WriteString(" {")
		for i, a := range ev.Attrs {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.Key + "=" + a.Value)
		}
		sb.WriteByte('}')
	}
	sb.WriteByte('\n')
	return []byte(sb.String())
}
