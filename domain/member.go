package domain

import (
	"strings"
	"time"
)

// Labels rendered when a task references a member that no longer exists.
// Member references are weak: removing a member never touches tasks.
const (
	UnknownMemberName = "Unknown"
	UnassignedLabel   = "Unassigned"
)

// Member is a team member that tasks reference by id for assignment,
// completion and comment authorship.
type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMember validates input and builds a member.
func NewMember(id, name, role, email string, now time.Time) (*Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMemberNameRequired
	}
	return &Member{
		ID:        id,
		Name:      name,
		Role:      strings.TrimSpace(role),
		Email:     strings.TrimSpace(email),
		CreatedAt: now,
	}, nil
}
