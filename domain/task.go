package domain

import (
	"fmt"
	"strings"
	"time"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusOpen      TaskStatus = "open"
	TaskStatusCompleted TaskStatus = "completed"
)

// MediaLink is a reference to supporting material (screenshot, clip, doc).
type MediaLink struct {
	URL     string    `json:"url"`
	AddedAt time.Time `json:"added_at"`
}

// Task represents a categorized issue filed under a game.
type Task struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Description       string      `json:"description,omitempty"`
	Category          Category    `json:"category"`
	Priority          *Severity   `json:"priority"`
	Urgency           *Severity   `json:"urgency"`
	Assignee          *string     `json:"assignee"`
	Status            TaskStatus  `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
	Comments          []Comment   `json:"comments"`
	CompletionComment *string     `json:"completion_comment"`
	CompletedBy       *string     `json:"completed_by"`
	MediaLinks        []MediaLink `json:"media_links"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == TaskStatusCompleted
}

func (t *Task) IsReview() bool {
	return t != nil && t.Category == CategoryReview
}

// TaskInput carries caller-supplied fields for a new task. MediaLinks is raw
// text with one URL per line.
type TaskInput struct {
	Title       string
	Description string
	Category    Category
	Priority    *Severity
	Urgency     *Severity
	Assignee    *string
	MediaLinks  string
}

// NewTask validates input and builds an open task. Review tasks are feedback
// records, not actionable work items: priority, urgency and assignee are
// forced to nil regardless of what the caller supplied.
func NewTask(id string, input TaskInput, now time.Time) (*Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if !input.Category.Valid() {
		return nil, NewError(ErrCodeValidation, fmt.Sprintf("invalid category %q", string(input.Category)))
	}

	task := &Task{
		ID:          id,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Priority:    input.Priority,
		Urgency:     input.Urgency,
		Assignee:    input.Assignee,
		Status:      TaskStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
		Comments:    []Comment{},
		MediaLinks:  ParseMediaLinks(input.MediaLinks, now),
	}

	if task.Category == CategoryReview {
		task.Priority = nil
		task.Urgency = nil
		task.Assignee = nil
	}

	return task, nil
}

// ParseMediaLinks splits raw multi-line text into media links, one URL per
// line. Blank lines are skipped.
func ParseMediaLinks(raw string, now time.Time) []MediaLink {
	links := []MediaLink{}
	for _, line := range strings.Split(raw, "\n") {
		url := strings.TrimSpace(line)
		if url == "" {
			continue
		}
		links = append(links, MediaLink{URL: url, AddedAt: now})
	}
	return links
}

// Complete marks the task done and records who closed it and why.
func (t *Task) Complete(comment, by *string, now time.Time) {
	t.Status = TaskStatusCompleted
	t.CompletionComment = comment
	t.CompletedBy = by
	t.UpdatedAt = now
}

// Reopen returns the task to the open state. Completion metadata is always
// cleared; a reopened task retains nothing from its previous closure.
func (t *Task) Reopen(now time.Time) {
	t.Status = TaskStatusOpen
	t.CompletionComment = nil
	t.CompletedBy = nil
	t.UpdatedAt = now
}

// AddComment appends an open comment. Comments are append-only: no operation
// edits or removes them afterwards.
func (t *Task) AddComment(id, text, author string, now time.Time) (*Comment, error) {
	text = strings.TrimSpace(text)
	author = strings.TrimSpace(author)
	if text == "" {
		return nil, ErrCommentTextRequired
	}
	if author == "" {
		return nil, ErrCommentAuthorRequired
	}

	comment := Comment{
		ID:        id,
		Text:      text,
		Author:    author,
		CreatedAt: now,
		Status:    CommentStatusOpen,
	}
	t.Comments = append(t.Comments, comment)
	t.UpdatedAt = now
	return &comment, nil
}

// Snapshot returns a value copy of the task, used when moving it to the
// deleted-tasks audit log.
func (t *Task) Snapshot() Task {
	return *t
}

// Normalize repairs slice fields that a decoded document may carry as null.
func (t *Task) Normalize() {
	if t.Comments == nil {
		t.Comments = []Comment{}
	}
	if t.MediaLinks == nil {
		t.MediaLinks = []MediaLink{}
	}
	if t.Status == "" {
		t.Status = TaskStatusOpen
	}
}
