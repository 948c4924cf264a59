package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskReviewForcesNullSeverity(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	assignee := "member-1"

	task, err := NewTask("t1", TaskInput{
		Title:    "feels off in chapter two",
		Category: CategoryReview,
		Priority: sev(SeverityCritical),
		Urgency:  sev(SeverityHigh),
		Assignee: &assignee,
	}, now)

	require.NoError(t, err)
	assert.Nil(t, task.Priority)
	assert.Nil(t, task.Urgency)
	assert.Nil(t, task.Assignee)
}

func TestNewTaskValidation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		input TaskInput
	}{
		{name: "empty title", input: TaskInput{Title: "   ", Category: CategoryBug}},
		{name: "missing category", input: TaskInput{Title: "crash on load"}},
		{name: "unknown category", input: TaskInput{Title: "crash on load", Category: Category("feature")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTask("t1", tt.input, now)
			require.Error(t, err)
			assert.True(t, IsDomainError(err, ErrCodeValidation))
		})
	}
}

func TestNewTaskDefaults(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	task, err := NewTask("t1", TaskInput{Title: "  camera clips through walls  ", Category: CategoryBug}, now)

	require.NoError(t, err)
	assert.Equal(t, "camera clips through walls", task.Title)
	assert.Equal(t, TaskStatusOpen, task.Status)
	assert.NotNil(t, task.Comments)
	assert.Empty(t, task.Comments)
	assert.Nil(t, task.CompletionComment)
	assert.Nil(t, task.CompletedBy)
	assert.Equal(t, now, task.CreatedAt)
}

func TestParseMediaLinks(t *testing.T) {
	now := time.Now()

	links := ParseMediaLinks("https://cdn.example/shot1.png\n\n  https://cdn.example/clip.mp4  \n", now)

	require.Len(t, links, 2)
	assert.Equal(t, "https://cdn.example/shot1.png", links[0].URL)
	assert.Equal(t, "https://cdn.example/clip.mp4", links[1].URL)
}

func TestCompleteThenReopenClearsMetadata(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	task, err := NewTask("t1", TaskInput{Title: "stuck quest marker", Category: CategoryQuest}, now)
	require.NoError(t, err)

	comment := "fixed in build 42"
	by := "member-1"
	task.Complete(&comment, &by, now.Add(time.Hour))

	require.Equal(t, TaskStatusCompleted, task.Status)
	require.NotNil(t, task.CompletionComment)
	require.NotNil(t, task.CompletedBy)

	task.Reopen(now.Add(2 * time.Hour))

	assert.Equal(t, TaskStatusOpen, task.Status)
	assert.Nil(t, task.CompletionComment)
	assert.Nil(t, task.CompletedBy)
	assert.Equal(t, now.Add(2*time.Hour), task.UpdatedAt)
}

func TestAddCommentValidation(t *testing.T) {
	now := time.Now()
	task, err := NewTask("t1", TaskInput{Title: "controls drift", Category: CategoryControls}, now)
	require.NoError(t, err)

	_, err = task.AddComment("c1", "   ", "member-1", now)
	assert.True(t, IsDomainError(err, ErrCodeValidation))
	assert.Empty(t, task.Comments)

	_, err = task.AddComment("c1", "repro on gamepad only", "", now)
	assert.True(t, IsDomainError(err, ErrCodeValidation))
	assert.Empty(t, task.Comments)
}

func TestAddCommentAppends(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	task, err := NewTask("t1", TaskInput{Title: "controls drift", Category: CategoryControls}, now)
	require.NoError(t, err)

	comment, err := task.AddComment("c1", "repro on gamepad only", "member-1", now.Add(time.Minute))

	require.NoError(t, err)
	assert.Equal(t, CommentStatusOpen, comment.Status)
	require.Len(t, task.Comments, 1)
	assert.Equal(t, "repro on gamepad only", task.Comments[0].Text)
	assert.Equal(t, now.Add(time.Minute), task.UpdatedAt)
}
