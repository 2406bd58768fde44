// Package diag defines the diagnostic model shared by the scanner and any
// later phase.
//
// # Data model
//
// Diagnostic is a plain value. Every field except Severity is optional:
//
//   - Severity – Info, Warning, Error or Fatal (builders default to Error).
//   - Code – compact numeric identifier with a stable string form (codes.go).
//   - Message – one-line summary shown in the header.
//   - Location – where the fault was found; the zero Location means none.
//   - Context – raw source text, possibly several lines, shown under the header.
//   - Labels – column spans of Context with optional messages.
//   - Reason and Help – longer explanation and suggested fix.
//   - Related – further diagnostics rendered after this one.
//
// # Publishing
//
// Producers publish through a Publisher handed to them at construction.
// Manager renders every diagnostic immediately to a writer and is safe for
// concurrent use; Bag collects; Dedup and Tee compose publishers.
//
// Default returns a process-wide Manager for callers that do not want to
// thread a publisher through; SetDefault replaces it. The lazily created
// default writes the short single-line form to stderr: this package cannot
// depend on internal/diagfmt, so callers wanting the boxed layout install
// it themselves, as cmd/alef does:
//
//	diag.SetDefault(diag.NewManager(os.Stderr, diagfmt.NewRenderer(false))) Nothing in this
// module publishes to Default unless the caller opts in by passing a nil
// publisher.
//
// Formatting lives in internal/diagfmt; this package only knows the short
// single-line form used when no renderer is installed.
package diag
