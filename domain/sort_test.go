package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sev(s Severity) *Severity { return &s }

func buildTask(id string, category Category, priority, urgency *Severity, status TaskStatus, createdAt time.Time) *Task {
	return &Task{
		ID:         id,
		Title:      id,
		Category:   category,
		Priority:   priority,
		Urgency:    urgency,
		Status:     status,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
		Comments:   []Comment{},
		MediaLinks: []MediaLink{},
	}
}

func ids(tasks []*Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestSortForDisplayOpenBeforeCompleted(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tasks := []*Task{
		buildTask("done", CategoryBug, sev(SeverityCritical), sev(SeverityCritical), TaskStatusCompleted, base.Add(time.Hour)),
		buildTask("open", CategoryBug, sev(SeverityLow), sev(SeverityLow), TaskStatusOpen, base),
	}

	sorted := SortForDisplay(tasks)

	assert.Equal(t, []string{"open", "done"}, ids(sorted))
}

func TestSortForDisplayReviewsLast(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tasks := []*Task{
		buildTask("review", CategoryReview, nil, nil, TaskStatusOpen, base.Add(time.Hour)),
		buildTask("bug", CategoryBug, nil, nil, TaskStatusOpen, base),
		buildTask("quest", CategoryQuest, nil, nil, TaskStatusOpen, base.Add(2*time.Hour)),
	}

	sorted := SortForDisplay(tasks)

	require.Len(t, sorted, 3)
	assert.Equal(t, "review", sorted[2].ID)
}

func TestSortForDisplayTwoReviewsOrderByCreation(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tasks := []*Task{
		buildTask("older", CategoryReview, nil, nil, TaskStatusOpen, base),
		buildTask("newer", CategoryReview, nil, nil, TaskStatusOpen, base.Add(time.Hour)),
	}

	sorted := SortForDisplay(tasks)

	assert.Equal(t, []string{"newer", "older"}, ids(sorted))
}

func TestSortForDisplayPriorityDecidesBeforeUrgency(t *testing.T) {
	// Two open bugs, same creation time: critical/low must beat high/high.
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tasks := []*Task{
		buildTask("high-high", CategoryBug, sev(SeverityHigh), sev(SeverityHigh), TaskStatusOpen, base),
		buildTask("critical-low", CategoryBug, sev(SeverityCritical), sev(SeverityLow), TaskStatusOpen, base),
	}

	sorted := SortForDisplay(tasks)

	assert.Equal(t, []string{"critical-low", "high-high"}, ids(sorted))
}

func TestSortForDisplayMissingPrioritySkipsToUrgency(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tasks := []*Task{
		buildTask("urgency-low", CategoryBug, nil, sev(SeverityLow), TaskStatusOpen, base),
		buildTask("urgency-critical", CategoryBug, sev(SeverityMedium), sev(SeverityCritical), TaskStatusOpen, base),
	}

	sorted := SortForDisplay(tasks)

	assert.Equal(t, []string{"urgency-critical", "urgency-low"}, ids(sorted))
}

func TestSortForDisplayNewestFirstOnFullTie(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tasks := []*Task{
		buildTask("older", CategoryBug, sev(SeverityHigh), sev(SeverityHigh), TaskStatusOpen, base),
		buildTask("newer", CategoryBug, sev(SeverityHigh), sev(SeverityHigh), TaskStatusOpen, base.Add(time.Minute)),
	}

	sorted := SortForDisplay(tasks)

	assert.Equal(t, []string{"newer", "older"}, ids(sorted))
}

func TestSortForDisplayIdempotent(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tasks := []*Task{
		buildTask("a", CategoryBug, sev(SeverityCritical), sev(SeverityLow), TaskStatusOpen, base),
		buildTask("b", CategoryReview, nil, nil, TaskStatusOpen, base.Add(time.Hour)),
		buildTask("c", CategoryQuest, sev(SeverityHigh), nil, TaskStatusCompleted, base),
		buildTask("d", CategoryControls, nil, sev(SeverityHigh), TaskStatusOpen, base.Add(2*time.Hour)),
		buildTask("e", CategoryBug, sev(SeverityLow), sev(SeverityCritical), TaskStatusOpen, base),
	}

	once := SortForDisplay(tasks)
	twice := SortForDisplay(once)

	assert.Equal(t, ids(once), ids(twice))
}

func TestSortForDisplayDoesNotMutateInput(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tasks := []*Task{
		buildTask("completed", CategoryBug, nil, nil, TaskStatusCompleted, base),
		buildTask("open", CategoryBug, nil, nil, TaskStatusOpen, base),
	}

	_ = SortForDisplay(tasks)

	assert.Equal(t, []string{"completed", "open"}, ids(tasks))
}
