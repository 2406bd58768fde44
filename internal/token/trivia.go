package token

import "alef/internal/source"

// Comment is a comment as written, delimiters included.
type Comment struct {
	Range source.Range
	Text  string
}

// IsBlock reports whether c is a /* */ comment.
func (c Comment) IsBlock() bool {
	return len(c.Text) >= 2 && c.Text[:2] == "/*"
}
