package domain

import (
	"strings"
	"time"
)

// IssueSet holds a game's tasks keyed by category. All four keys are present
// on the wire after any mutation, possibly as empty arrays.
type IssueSet struct {
	Bug      []*Task `json:"bug"`
	Controls []*Task `json:"controls"`
	Quest    []*Task `json:"quest"`
	Review   []*Task `json:"review"`
}

// Normalize repairs category arrays that a decoded document may lack.
// Documents from the gateway are never trusted to carry every key.
func (s *IssueSet) Normalize() {
	if s.Bug == nil {
		s.Bug = []*Task{}
	}
	if s.Controls == nil {
		s.Controls = []*Task{}
	}
	if s.Quest == nil {
		s.Quest = []*Task{}
	}
	if s.Review == nil {
		s.Review = []*Task{}
	}
	for _, t := range s.All() {
		t.Normalize()
	}
}

// ByCategory returns the backing slice for a category.
func (s *IssueSet) ByCategory(c Category) []*Task {
	switch c {
	case CategoryBug:
		return s.Bug
	case CategoryControls:
		return s.Controls
	case CategoryQuest:
		return s.Quest
	case CategoryReview:
		return s.Review
	}
	return nil
}

// All concatenates the four buckets in display order into a fresh slice.
func (s *IssueSet) All() []*Task {
	out := make([]*Task, 0, len(s.Bug)+len(s.Controls)+len(s.Quest)+len(s.Review))
	for _, c := range Categories {
		out = append(out, s.ByCategory(c)...)
	}
	return out
}

func (s *IssueSet) add(t *Task) {
	switch t.Category {
	case CategoryBug:
		s.Bug = append(s.Bug, t)
	case CategoryControls:
		s.Controls = append(s.Controls, t)
	case CategoryQuest:
		s.Quest = append(s.Quest, t)
	case CategoryReview:
		s.Review = append(s.Review, t)
	}
}

func (s *IssueSet) find(id string) *Task {
	for _, c := range Categories {
		for _, t := range s.ByCategory(c) {
			if t.ID == id {
				return t
			}
		}
	}
	return nil
}

func (s *IssueSet) remove(id string) *Task {
	for _, c := range Categories {
		bucket := s.ByCategory(c)
		for i, t := range bucket {
			if t.ID != id {
				continue
			}
			next := make([]*Task, 0, len(bucket)-1)
			next = append(next, bucket[:i]...)
			next = append(next, bucket[i+1:]...)
			switch c {
			case CategoryBug:
				s.Bug = next
			case CategoryControls:
				s.Controls = next
			case CategoryQuest:
				s.Quest = next
			case CategoryReview:
				s.Review = next
			}
			return t
		}
	}
	return nil
}

// DeletedTask is a task snapshot moved to a game's audit log. Deletion is a
// move, never an erasure, while the owning game exists.
type DeletedTask struct {
	Task
	DeletedAt    time.Time `json:"deleted_at"`
	DeletedBy    string    `json:"deleted_by"`
	DeleteReason string    `json:"delete_reason"`
}

// Game is the exclusive owner of its tasks and their comments; deleting a
// game discards all of them, including the audit log.
type Game struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	Genre        string        `json:"genre,omitempty"`
	Completed    bool          `json:"completed"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	Issues       IssueSet      `json:"issues"`
	DeletedTasks []DeletedTask `json:"deleted_tasks"`
}

// NewGame validates input and builds an empty game.
func NewGame(id, name, description, genre string, now time.Time) (*Game, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrGameNameRequired
	}
	g := &Game{
		ID:           id,
		Name:         name,
		Description:  strings.TrimSpace(description),
		Genre:        strings.TrimSpace(genre),
		CreatedAt:    now,
		UpdatedAt:    now,
		DeletedTasks: []DeletedTask{},
	}
	g.Issues.Normalize()
	return g, nil
}

// Normalize repairs structure a decoded document may lack.
func (g *Game) Normalize() {
	g.Issues.Normalize()
	if g.DeletedTasks == nil {
		g.DeletedTasks = []DeletedTask{}
	}
}

// AddTask files a task under its category bucket.
func (g *Game) AddTask(t *Task) {
	g.Issues.Normalize()
	g.Issues.add(t)
}

// FindTask scans the four category buckets in display order. First id match
// wins; ids are unique across a game's tasks.
func (g *Game) FindTask(id string) (*Task, error) {
	if t := g.Issues.find(id); t != nil {
		return t, nil
	}
	return nil, ErrTaskNotFound
}

// DeleteTask moves a task from its category bucket to the audit log in one
// in-memory step. This is the only path out of a bucket short of deleting
// the whole game.
func (g *Game) DeleteTask(id, reason, deletedBy string, now time.Time) (*DeletedTask, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrDeleteReasonRequired
	}
	t := g.Issues.remove(id)
	if t == nil {
		return nil, ErrTaskNotFound
	}
	deleted := DeletedTask{
		Task:         t.Snapshot(),
		DeletedAt:    now,
		DeletedBy:    strings.TrimSpace(deletedBy),
		DeleteReason: reason,
	}
	g.DeletedTasks = append(g.DeletedTasks, deleted)
	return &deleted, nil
}
