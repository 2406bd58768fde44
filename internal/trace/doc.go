// Package trace records what the front end is doing: driver steps, per-file
// lexing passes, and, at the debug level, individual tokens and published
// diagnostics.
//
// # Usage
//
//	alef lex --trace=- --trace-level=detail main.l
//	alef lex --debug main.l   # same as --trace=- --trace-level=debug
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Only fatal conditions
//   - LevelPhase: Driver and pass boundaries
//   - LevelDetail: Per-file events
//   - LevelDebug: Everything including single tokens
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "lex", parentID)
//	defer span.End("")
package trace
