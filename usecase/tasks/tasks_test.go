package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gamedesk/backend/domain"
	"github.com/gamedesk/backend/internal/store"
	"github.com/gamedesk/backend/repository/memory"
)

func testStore(t *testing.T) (*store.Store, string) {
	t.Helper()
	st := store.New(memory.New(), nil, zap.NewNop())
	require.NoError(t, st.Load(context.Background()))

	g, err := domain.NewGame("g1", "Hollow Depths", "", "platformer", time.Now())
	require.NoError(t, err)
	require.NoError(t, st.AddGame(context.Background(), g))
	return st, g.ID
}

func TestCreateFilesTaskUnderCategory(t *testing.T) {
	st, gameID := testStore(t)
	uc := New(st, zap.NewNop())

	task, err := uc.Create(context.Background(), gameID, CreateInput{
		Title:      "camera clips through wall",
		Category:   "bug",
		Priority:   "critical",
		Urgency:    "high",
		Assignee:   "m1",
		MediaLinks: "https://cdn.example.com/clip.mp4\n\nhttps://cdn.example.com/shot.png",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, domain.TaskStatusOpen, task.Status)
	require.NotNil(t, task.Priority)
	assert.Equal(t, domain.SeverityCritical, *task.Priority)
	require.NotNil(t, task.Assignee)
	assert.Equal(t, "m1", *task.Assignee)
	require.Len(t, task.MediaLinks, 2)

	listed, err := uc.List(context.Background(), gameID, "bug", domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, task.ID, listed[0].ID)
}

func TestCreateReviewForcesNullSeverity(t *testing.T) {
	st, gameID := testStore(t)
	uc := New(st, zap.NewNop())

	task, err := uc.Create(context.Background(), gameID, CreateInput{
		Title:    "playtest feedback: boss too punishing",
		Category: "review",
		Priority: "critical",
		Urgency:  "critical",
		Assignee: "m1",
	})

	require.NoError(t, err)
	assert.Nil(t, task.Priority)
	assert.Nil(t, task.Urgency)
	assert.Nil(t, task.Assignee)
}

func TestCreateValidation(t *testing.T) {
	st, gameID := testStore(t)
	uc := New(st, zap.NewNop())

	tests := []struct {
		name  string
		input CreateInput
	}{
		{"blank title", CreateInput{Title: "   ", Category: "bug"}},
		{"invalid category", CreateInput{Title: "x", Category: "chores"}},
		{"invalid priority", CreateInput{Title: "x", Category: "bug", Priority: "urgent"}},
		{"invalid urgency", CreateInput{Title: "x", Category: "bug", Urgency: "severe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), gameID, tt.input)
			assert.True(t, domain.IsDomainError(err, domain.ErrCodeValidation))
		})
	}
}

func TestCreateGameNotFound(t *testing.T) {
	st, _ := testStore(t)
	uc := New(st, zap.NewNop())

	_, err := uc.Create(context.Background(), "missing", CreateInput{Title: "x", Category: "bug"})

	assert.ErrorIs(t, err, domain.ErrGameNotFound)
}

func TestSetStatusCompleteThenReopen(t *testing.T) {
	st, gameID := testStore(t)
	uc := New(st, zap.NewNop())
	task, err := uc.Create(context.Background(), gameID, CreateInput{Title: "fix ladder grab", Category: "controls"})
	require.NoError(t, err)

	completed, err := uc.SetStatus(context.Background(), gameID, task.ID, StatusInput{
		Status:            "completed",
		CompletionComment: "retuned grab window",
		CompletedBy:       "m1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletionComment)
	assert.Equal(t, "retuned grab window", *completed.CompletionComment)
	require.NotNil(t, completed.CompletedBy)

	reopened, err := uc.SetStatus(context.Background(), gameID, task.ID, StatusInput{Status: "open"})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusOpen, reopened.Status)
	assert.Nil(t, reopened.CompletionComment)
	assert.Nil(t, reopened.CompletedBy)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	st, gameID := testStore(t)
	uc := New(st, zap.NewNop())
	task, err := uc.Create(context.Background(), gameID, CreateInput{Title: "x", Category: "bug"})
	require.NoError(t, err)

	_, err = uc.SetStatus(context.Background(), gameID, task.ID, StatusInput{Status: "archived"})

	assert.True(t, domain.IsDomainError(err, domain.ErrCodeValidation))
}

func TestAddComment(t *testing.T) {
	st, gameID := testStore(t)
	uc := New(st, zap.NewNop())
	task, err := uc.Create(context.Background(), gameID, CreateInput{Title: "x", Category: "quest"})
	require.NoError(t, err)

	comment, err := uc.AddComment(context.Background(), gameID, task.ID, "repro steps attached", "m2")
	require.NoError(t, err)
	assert.Equal(t, "repro steps attached", comment.Text)
	assert.Equal(t, domain.CommentStatusOpen, comment.Status)

	got, err := uc.Get(context.Background(), gameID, task.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, comment.ID, got.Comments[0].ID)
}

func TestAddCommentValidation(t *testing.T) {
	st, gameID := testStore(t)
	uc := New(st, zap.NewNop())
	task, err := uc.Create(context.Background(), gameID, CreateInput{Title: "x", Category: "quest"})
	require.NoError(t, err)

	_, err = uc.AddComment(context.Background(), gameID, task.ID, "   ", "m2")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeValidation))

	_, err = uc.AddComment(context.Background(), gameID, task.ID, "text", "")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeValidation))

	got, err := uc.Get(context.Background(), gameID, task.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Comments)
}

func TestDeleteMovesTaskToAuditLog(t *testing.T) {
	st, gameID := testStore(t)
	uc := New(st, zap.NewNop())
	task, err := uc.Create(context.Background(), gameID, CreateInput{Title: "x", Category: "bug"})
	require.NoError(t, err)

	deleted, err := uc.Delete(context.Background(), gameID, task.ID, "duplicate", "m1")
	require.NoError(t, err)
	assert.Equal(t, task.ID, deleted.ID)
	assert.Equal(t, "duplicate", deleted.DeleteReason)

	listed, err := uc.List(context.Background(), gameID, domain.CategoryAll, domain.TaskFilter{})
	require.NoError(t, err)
	for _, item := range listed {
		assert.NotEqual(t, task.ID, item.ID)
	}

	require.NoError(t, st.ViewGame(gameID, func(g *domain.Game) error {
		require.Len(t, g.DeletedTasks, 1)
		assert.Equal(t, task.ID, g.DeletedTasks[0].ID)
		return nil
	}))

	_, err = uc.Get(context.Background(), gameID, task.ID)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestDeleteRequiresReason(t *testing.T) {
	st, gameID := testStore(t)
	uc := New(st, zap.NewNop())
	task, err := uc.Create(context.Background(), gameID, CreateInput{Title: "x", Category: "bug"})
	require.NoError(t, err)

	_, err = uc.Delete(context.Background(), gameID, task.ID, "  ", "m1")

	assert.True(t, domain.IsDomainError(err, domain.ErrCodeValidation))
	_, err = uc.Get(context.Background(), gameID, task.ID)
	assert.NoError(t, err)
}

func TestListReturnsDisplayOrder(t *testing.T) {
	st, gameID := testStore(t)
	uc := New(st, zap.NewNop())

	low, err := uc.Create(context.Background(), gameID, CreateInput{Title: "low", Category: "bug", Priority: "low", Urgency: "low"})
	require.NoError(t, err)
	critical, err := uc.Create(context.Background(), gameID, CreateInput{Title: "critical", Category: "quest", Priority: "critical", Urgency: "low"})
	require.NoError(t, err)
	review, err := uc.Create(context.Background(), gameID, CreateInput{Title: "review", Category: "review"})
	require.NoError(t, err)
	_, err = uc.SetStatus(context.Background(), gameID, low.ID, StatusInput{Status: "completed"})
	require.NoError(t, err)

	listed, err := uc.List(context.Background(), gameID, domain.CategoryAll, domain.TaskFilter{})

	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, critical.ID, listed[0].ID)
	assert.Equal(t, review.ID, listed[1].ID)
	assert.Equal(t, low.ID, listed[2].ID)
}
