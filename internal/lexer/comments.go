package lexer

import "alef/internal/token"

// CommentManager is an append-only comment sink. The lexer records into it
// and never reads back.
type CommentManager interface {
	Record(c token.Comment)
	List() []token.Comment
}

// CommentList keeps comments in insertion order.
type CommentList struct {
	items []token.Comment
}

func NewCommentList() *CommentList {
	return &CommentList{}
}

func (l *CommentList) Record(c token.Comment) {
	l.items = append(l.items, c)
}

func (l *CommentList) List() []token.Comment {
	return l.items
}

func (l *CommentList) Len() int {
	return len(l.items)
}
