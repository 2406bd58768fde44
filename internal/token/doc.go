// Package token defines the lexical tokens of Alef.
// Invariants:
//   - Every token carries the source.Range it was scanned from; Range.Content
//     is the exact source spelling of the token.
//   - Literal tokens carry a validity flag that is false when a recoverable
//     fault was diagnosed while scanning them.
//   - The ellipsis "..." is an identifier token whose name is "...".
//   - Comments never appear in the token stream; they are collected as
//     Comment values by a comment sink.
package token
