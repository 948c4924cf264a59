package members

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gamedesk/backend/domain"
	"github.com/gamedesk/backend/internal/store"
)

// UseCase manages the team member roster. Members are only ever referenced
// weakly from tasks, so removal needs no cascade.
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

// AddInput carries the fields of a new member.
type AddInput struct {
	Name  string
	Role  string
	Email string
}

// Add registers a member.
func (uc *UseCase) Add(ctx context.Context, input AddInput) (*domain.Member, error) {
	member, err := domain.NewMember(uuid.NewString(), input.Name, input.Role, input.Email, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.store.AddMember(ctx, member); err != nil {
		if !domain.IsDomainError(err, domain.ErrCodePersistence) {
			return nil, err
		}
		uc.logger.Warn("member added, flush deferred", zap.String("member_id", member.ID))
		return member, err
	}
	uc.logger.Info("member added", zap.String("member_id", member.ID))
	return member, nil
}

// Remove drops a member. Tasks keep their references and render placeholder
// labels from then on.
func (uc *UseCase) Remove(ctx context.Context, id string) error {
	return uc.store.RemoveMember(ctx, id)
}

// List returns the roster.
func (uc *UseCase) List(ctx context.Context) ([]domain.Member, error) {
	var out []domain.Member
	err := uc.store.ViewMembers(func(members []*domain.Member) error {
		out = make([]domain.Member, 0, len(members))
		for _, m := range members {
			out = append(out, *m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
