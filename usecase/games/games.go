package games

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gamedesk/backend/domain"
	"github.com/gamedesk/backend/internal/store"
)

// UseCase implements game lifecycle and the per-game reporting views.
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

// CreateInput carries the fields of a new game.
type CreateInput struct {
	Name        string
	Description string
	Genre       string
}

// Create registers a new game with empty category buckets.
func (uc *UseCase) Create(ctx context.Context, input CreateInput) (*domain.Game, error) {
	game, err := domain.NewGame(uuid.NewString(), input.Name, input.Description, input.Genre, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.store.AddGame(ctx, game); err != nil {
		if !domain.IsDomainError(err, domain.ErrCodePersistence) {
			return nil, err
		}
		uc.logger.Warn("game created, flush deferred", zap.String("game_id", game.ID))
		return game, err
	}
	uc.logger.Info("game created", zap.String("game_id", game.ID), zap.String("name", game.Name))
	return game, nil
}

// UpdateInput carries partial game edits; nil fields are left untouched.
type UpdateInput struct {
	Name        *string
	Description *string
	Genre       *string
	Completed   *bool
}

// Update edits game metadata in place.
func (uc *UseCase) Update(ctx context.Context, id string, input UpdateInput) (*domain.Game, error) {
	var updated domain.Game
	err := uc.store.MutateGame(ctx, id, func(g *domain.Game) error {
		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				return domain.ErrGameNameRequired
			}
			g.Name = name
		}
		if input.Description != nil {
			g.Description = strings.TrimSpace(*input.Description)
		}
		if input.Genre != nil {
			g.Genre = strings.TrimSpace(*input.Genre)
		}
		if input.Completed != nil {
			g.Completed = *input.Completed
		}
		g.UpdatedAt = time.Now()
		updated = *g
		return nil
	})
	if err != nil && updated.ID == "" {
		return nil, err
	}
	return &updated, err
}

// Delete removes a game and everything it owns: tasks, comments, and the
// deleted-tasks audit log. None of them exist outside their game.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	err := uc.store.RemoveGame(ctx, id)
	if err == nil || domain.IsDomainError(err, domain.ErrCodePersistence) {
		uc.logger.Info("game deleted", zap.String("game_id", id))
	}
	return err
}

// List returns shallow snapshots of every game.
func (uc *UseCase) List(ctx context.Context) ([]domain.Game, error) {
	var out []domain.Game
	err := uc.store.ViewGames(func(games []*domain.Game) error {
		out = make([]domain.Game, 0, len(games))
		for _, g := range games {
			out = append(out, *g)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns a snapshot of one game.
func (uc *UseCase) Get(ctx context.Context, id string) (*domain.Game, error) {
	var out domain.Game
	err := uc.store.ViewGame(id, func(g *domain.Game) error {
		out = *g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats summarizes a game's non-deleted tasks.
func (uc *UseCase) Stats(ctx context.Context, id string) (domain.Statistics, error) {
	var stats domain.Statistics
	err := uc.store.ViewGame(id, func(g *domain.Game) error {
		stats = domain.ComputeStatistics(g)
		return nil
	})
	return stats, err
}

// DeletedTasks returns a game's audit log.
func (uc *UseCase) DeletedTasks(ctx context.Context, id string) ([]domain.DeletedTask, error) {
	var out []domain.DeletedTask
	err := uc.store.ViewGame(id, func(g *domain.Game) error {
		out = append([]domain.DeletedTask{}, g.DeletedTasks...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
