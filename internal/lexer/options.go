package lexer

import (
	"alef/internal/diag"
	"alef/internal/trace"
)

// Options configures a Lexer; the zero value is usable.
type Options struct {
	// Comments receives every comment; nil drops them.
	Comments CommentManager
	// Diagnostics receives lexical faults; nil means diag.Default().
	Diagnostics diag.Publisher
	// Tracer records produced tokens and diagnostics at the debug level.
	Tracer trace.Tracer
	// TraceParent is the span the lexer's events hang under.
	TraceParent uint64
}

func (o Options) publisher() diag.Publisher {
	if o.Diagnostics != nil {
		return o.Diagnostics
	}
	return diag.Default()
}

func (o Options) tracer() trace.Tracer {
	if o.Tracer != nil {
		return o.Tracer
	}
	return trace.Nop
}
