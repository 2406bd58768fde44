// Package lexer turns a source.Buffer into a stream of tokens.
//
// The lexer never stops on malformed input: every fault is published as a
// diag.Diagnostic, the offending characters are consumed, and a token
// (marked invalid where it applies) is still produced. Once the input is
// exhausted Next and Peek return the same End token forever.
//
// Peek(k) looks k tokens ahead through a FIFO of already scanned tokens, so
// lookahead never rescans.
package lexer
