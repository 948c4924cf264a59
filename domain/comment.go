package domain

import "time"

// CommentStatus is kept on the wire for forward compatibility. No operation
// transitions it today.
type CommentStatus string

const (
	CommentStatusOpen     CommentStatus = "open"
	CommentStatusResolved CommentStatus = "resolved"
	CommentStatusClosed   CommentStatus = "closed"
)

// Comment is a note attached to a task. Comments are append-only.
type Comment struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Author    string        `json:"author"`
	CreatedAt time.Time     `json:"created_at"`
	Status    CommentStatus `json:"status"`
}
