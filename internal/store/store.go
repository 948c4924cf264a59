package store

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/gamedesk/backend/domain"
	"github.com/gamedesk/backend/internal/infrastructure/journal"
	"github.com/gamedesk/backend/repository"
)

// Store is the in-memory domain state: every game with its nested issues and
// audit log, plus the member roster. State is loaded wholesale from the
// persistence gateway and flushed back wholesale after each mutation.
//
// A single mutex is held across mutation and flush. Two operations racing a
// save would otherwise overwrite each other's whole-document writes.
type Store struct {
	gateway repository.Gateway
	journal *journal.Store
	logger  *zap.Logger

	mu      sync.Mutex
	games   []*domain.Game
	members []*domain.Member
}

// New builds a store. The journal is optional; without it a failed flush is
// only retried while the process lives.
func New(gateway repository.Gateway, jr *journal.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		gateway: gateway,
		journal: jr,
		logger:  logger,
		games:   []*domain.Game{},
		members: []*domain.Member{},
	}
}

// Load replaces in-memory state from storage. A journaled document wins over
// the gateway copy: it is newer state that never reached storage. Absent
// collections load as empty, and decoded games are repaired defensively.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	gamesDoc, err := s.loadDocument(ctx, repository.CollectionGames)
	if err != nil {
		return domain.WrapError(domain.ErrCodePersistence, "load games collection", err)
	}
	membersDoc, err := s.loadDocument(ctx, repository.CollectionMembers)
	if err != nil {
		return domain.WrapError(domain.ErrCodePersistence, "load members collection", err)
	}

	games := []*domain.Game{}
	if len(gamesDoc) > 0 {
		if err := json.Unmarshal(gamesDoc, &games); err != nil {
			return domain.WrapError(domain.ErrCodeInternal, "corrupt games collection", err)
		}
	}
	for _, g := range games {
		g.Normalize()
	}

	members := []*domain.Member{}
	if len(membersDoc) > 0 {
		if err := json.Unmarshal(membersDoc, &members); err != nil {
			return domain.WrapError(domain.ErrCodeInternal, "corrupt members collection", err)
		}
	}

	s.games = games
	s.members = members
	s.logger.Info("domain store loaded",
		zap.Int("games", len(games)),
		zap.Int("members", len(members)))
	return nil
}

func (s *Store) loadDocument(ctx context.Context, key string) (json.RawMessage, error) {
	if s.journal != nil {
		if document, err := s.journal.Get(key); err == nil && len(document) > 0 {
			s.logger.Warn("using journaled document, storage is behind",
				zap.String("collection", key))
			return document, nil
		}
	}
	return s.gateway.Load(ctx, key)
}

// AddGame appends a game and flushes.
func (s *Store) AddGame(ctx context.Context, g *domain.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = append(s.games, g)
	return s.flushLocked(ctx, repository.CollectionGames)
}

// MutateGame runs fn against the named game under the store lock and flushes
// afterwards. When fn errors the mutation is rejected and nothing is flushed;
// a flush failure after a successful fn leaves memory ahead of storage and
// returns a persistence error.
func (s *Store) MutateGame(ctx context.Context, id string, fn func(*domain.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.findGameLocked(id)
	if g == nil {
		return domain.ErrGameNotFound
	}
	if err := fn(g); err != nil {
		return err
	}
	return s.flushLocked(ctx, repository.CollectionGames)
}

// RemoveGame deletes a game and, with it, every task, comment and audit
// record it owns.
func (s *Store) RemoveGame(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.games {
		if g.ID != id {
			continue
		}
		next := make([]*domain.Game, 0, len(s.games)-1)
		next = append(next, s.games[:i]...)
		next = append(next, s.games[i+1:]...)
		s.games = next
		return s.flushLocked(ctx, repository.CollectionGames)
	}
	return domain.ErrGameNotFound
}

// ViewGame runs fn against the named game under the store lock. fn must copy
// out whatever should outlive the call.
func (s *Store) ViewGame(id string, fn func(*domain.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.findGameLocked(id)
	if g == nil {
		return domain.ErrGameNotFound
	}
	return fn(g)
}

// ViewGames runs fn against the full game list under the store lock.
func (s *Store) ViewGames(fn func([]*domain.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.games)
}

// AddMember appends a member and flushes the member collection.
func (s *Store) AddMember(ctx context.Context, m *domain.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append(s.members, m)
	return s.flushLocked(ctx, repository.CollectionMembers)
}

// RemoveMember drops a member from the roster. Tasks referencing the member
// are left untouched; their lookups degrade to placeholder labels.
func (s *Store) RemoveMember(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.members {
		if m.ID != id {
			continue
		}
		next := make([]*domain.Member, 0, len(s.members)-1)
		next = append(next, s.members[:i]...)
		next = append(next, s.members[i+1:]...)
		s.members = next
		return s.flushLocked(ctx, repository.CollectionMembers)
	}
	return domain.ErrMemberNotFound
}

// ViewMembers runs fn against the member roster under the store lock.
func (s *Store) ViewMembers(fn func([]*domain.Member) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.members)
}

// MemberName resolves a member id for display. Dangling references resolve to
// the Unknown placeholder, never to an error.
func (s *Store) MemberName(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.members {
		if m.ID == id {
			return m.Name
		}
	}
	return domain.UnknownMemberName
}

// AssigneeName resolves a task assignee for display, degrading to Unassigned
// when the reference is nil or dangling.
func (s *Store) AssigneeName(id *string) string {
	if id == nil || *id == "" {
		return domain.UnassignedLabel
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.members {
		if m.ID == *id {
			return m.Name
		}
	}
	return domain.UnassignedLabel
}

// FlushPending retries every journaled collection against the gateway. The
// current in-memory state is flushed, which is at least as new as whatever
// was journaled.
func (s *Store) FlushPending(ctx context.Context) error {
	if s.journal == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.journal.Keys()
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := s.flushLocked(ctx, key); err != nil {
			return err
		}
		s.logger.Info("deferred flush completed", zap.String("collection", key))
	}
	return nil
}

func (s *Store) findGameLocked(id string) *domain.Game {
	for _, g := range s.games {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// flushLocked writes one collection through the gateway. On failure the
// document is journaled and the in-memory mutation stands: storage is behind
// memory until a retry succeeds.
func (s *Store) flushLocked(ctx context.Context, key string) error {
	var payload interface{}
	switch key {
	case repository.CollectionGames:
		payload = s.games
	case repository.CollectionMembers:
		payload = s.members
	default:
		return domain.NewError(domain.ErrCodeInternal, "unknown collection "+key)
	}

	document, err := json.Marshal(payload)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "encode collection "+key, err)
	}

	if err := s.gateway.Save(ctx, key, document); err != nil {
		s.logger.Warn("flush failed, memory is ahead of storage",
			zap.String("collection", key),
			zap.Error(err))
		if s.journal != nil {
			if jerr := s.journal.Put(key, document); jerr != nil {
				s.logger.Error("journal write failed", zap.String("collection", key), zap.Error(jerr))
			}
		}
		return domain.WrapError(domain.ErrCodePersistence, "flush deferred for "+key, err)
	}

	if s.journal != nil {
		_ = s.journal.Delete(key)
	}
	return nil
}
