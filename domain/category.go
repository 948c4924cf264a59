package domain

import "fmt"

// Category is one of the four fixed buckets a task is filed under.
type Category string

const (
	CategoryBug      Category = "bug"
	CategoryControls Category = "controls"
	CategoryQuest    Category = "quest"
	CategoryReview   Category = "review"
)

// CategoryAll is the pseudo-category accepted by listing calls to select
// every bucket at once. It is never stored on a task.
const CategoryAll = "all"

// Categories lists every bucket in display order. Concatenated listings and
// task lookups always walk buckets in this order.
var Categories = []Category{CategoryBug, CategoryControls, CategoryQuest, CategoryReview}

func (c Category) Valid() bool {
	switch c {
	case CategoryBug, CategoryControls, CategoryQuest, CategoryReview:
		return true
	}
	return false
}

// Severity is the four-level scale shared by task priority and urgency.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

var severityRank = map[Severity]int{
	SeverityCritical: 4,
	SeverityHigh:     3,
	SeverityMedium:   2,
	SeverityLow:      1,
}

// Rank returns the ordering weight of a severity. Unknown values rank zero.
func (s Severity) Rank() int {
	return severityRank[s]
}

func (s Severity) Valid() bool {
	return severityRank[s] > 0
}

// ParseSeverity converts user input into an optional severity. Empty input
// yields nil so unset priority/urgency stays null on the wire.
func ParseSeverity(raw string) (*Severity, error) {
	if raw == "" {
		return nil, nil
	}
	s := Severity(raw)
	if !s.Valid() {
		return nil, NewError(ErrCodeValidation, fmt.Sprintf("invalid severity %q", raw))
	}
	return &s, nil
}
