// Package diagfmt renders diagnostics for terminals and prints token
// streams in the formats accepted by `alef lex --format`.
package diagfmt
