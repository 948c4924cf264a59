package repository

import (
	"context"
	"encoding/json"
)

// Collection keys shared by every gateway backend.
const (
	CollectionGames   = "games"
	CollectionMembers = "members"
)

// Gateway is the persistence contract: an opaque collection-key to JSON
// document store with whole-document overwrite. Backends are interchangeable;
// the domain store never sees which one is wired in.
//
// Load returns (nil, nil) when the collection does not exist yet — absence is
// not an error.
type Gateway interface {
	Load(ctx context.Context, key string) (json.RawMessage, error)
	Save(ctx context.Context, key string, document json.RawMessage) error
	Ping(ctx context.Context) error
	Close() error
}
