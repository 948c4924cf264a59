package tasks

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gamedesk/backend/domain"
	"github.com/gamedesk/backend/internal/store"
)

// UseCase implements the task lifecycle: create, complete/reopen, comment,
// audit-move deletion, and the ordered listings the UI renders.
type UseCase struct {
	store  *store.Store
	logger *zap.Logger
}

func New(st *store.Store, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		store:  st,
		logger: logger,
	}
}

// CreateInput carries the fields of a new task as submitted by the client.
type CreateInput struct {
	Title       string
	Description string
	Category    string
	Priority    string
	Urgency     string
	Assignee    string
	MediaLinks  string
}

// Create files a new open task under the game's category bucket. On a flush
// failure the task is still returned together with the persistence error so
// the caller can surface the deferred save.
func (uc *UseCase) Create(ctx context.Context, gameID string, input CreateInput) (*domain.Task, error) {
	priority, err := domain.ParseSeverity(input.Priority)
	if err != nil {
		return nil, err
	}
	urgency, err := domain.ParseSeverity(input.Urgency)
	if err != nil {
		return nil, err
	}

	var created *domain.Task
	err = uc.store.MutateGame(ctx, gameID, func(g *domain.Game) error {
		task, err := domain.NewTask(uuid.NewString(), domain.TaskInput{
			Title:       input.Title,
			Description: input.Description,
			Category:    domain.Category(input.Category),
			Priority:    priority,
			Urgency:     urgency,
			Assignee:    optional(input.Assignee),
			MediaLinks:  input.MediaLinks,
		}, time.Now())
		if err != nil {
			return err
		}
		g.AddTask(task)
		created = task
		return nil
	})
	if err != nil && created == nil {
		return nil, err
	}
	if err != nil {
		uc.logger.Warn("task created, flush deferred",
			zap.String("game_id", gameID),
			zap.String("task_id", created.ID))
		return created, err
	}

	uc.logger.Info("task created",
		zap.String("game_id", gameID),
		zap.String("task_id", created.ID),
		zap.String("category", string(created.Category)))
	return created, nil
}

// StatusInput toggles a task between open and completed. Completion metadata
// only applies on the transition to completed.
type StatusInput struct {
	Status            string
	CompletionComment string
	CompletedBy       string
}

// SetStatus completes or reopens a task. Reopening always clears the
// completion comment and completed-by fields.
func (uc *UseCase) SetStatus(ctx context.Context, gameID, taskID string, input StatusInput) (*domain.Task, error) {
	var updated *domain.Task
	err := uc.store.MutateGame(ctx, gameID, func(g *domain.Game) error {
		task, err := g.FindTask(taskID)
		if err != nil {
			return err
		}
		switch domain.TaskStatus(input.Status) {
		case domain.TaskStatusCompleted:
			task.Complete(optional(input.CompletionComment), optional(input.CompletedBy), time.Now())
		case domain.TaskStatusOpen:
			task.Reopen(time.Now())
		default:
			return domain.NewError(domain.ErrCodeValidation, "status must be open or completed")
		}
		updated = task
		return nil
	})
	if err != nil && updated == nil {
		return nil, err
	}
	return updated, err
}

// AddComment appends a comment to a task.
func (uc *UseCase) AddComment(ctx context.Context, gameID, taskID, text, author string) (*domain.Comment, error) {
	var added *domain.Comment
	err := uc.store.MutateGame(ctx, gameID, func(g *domain.Game) error {
		task, err := g.FindTask(taskID)
		if err != nil {
			return err
		}
		comment, err := task.AddComment(uuid.NewString(), text, author, time.Now())
		if err != nil {
			return err
		}
		added = comment
		return nil
	})
	if err != nil && added == nil {
		return nil, err
	}
	return added, err
}

// Delete moves a task to the game's deleted-tasks audit log.
func (uc *UseCase) Delete(ctx context.Context, gameID, taskID, reason, deletedBy string) (*domain.DeletedTask, error) {
	var deleted *domain.DeletedTask
	err := uc.store.MutateGame(ctx, gameID, func(g *domain.Game) error {
		d, err := g.DeleteTask(taskID, reason, deletedBy, time.Now())
		if err != nil {
			return err
		}
		deleted = d
		return nil
	})
	if err != nil && deleted == nil {
		return nil, err
	}
	if err == nil {
		uc.logger.Info("task deleted",
			zap.String("game_id", gameID),
			zap.String("task_id", taskID))
	}
	return deleted, err
}

// List returns a game's tasks filtered and in display order. Snapshots are
// returned so callers render a consistent view outside the store lock.
func (uc *UseCase) List(ctx context.Context, gameID, category string, filter domain.TaskFilter) ([]domain.Task, error) {
	var out []domain.Task
	err := uc.store.ViewGame(gameID, func(g *domain.Game) error {
		tasks, err := domain.FilterTasks(g, category, filter)
		if err != nil {
			return err
		}
		out = make([]domain.Task, 0, len(tasks))
		for _, t := range domain.SortForDisplay(tasks) {
			out = append(out, t.Snapshot())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns a snapshot of one task.
func (uc *UseCase) Get(ctx context.Context, gameID, taskID string) (*domain.Task, error) {
	var out domain.Task
	err := uc.store.ViewGame(gameID, func(g *domain.Game) error {
		task, err := g.FindTask(taskID)
		if err != nil {
			return err
		}
		out = task.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func optional(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
