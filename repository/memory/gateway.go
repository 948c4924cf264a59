package memory

import (
	"context"
	"encoding/json"
	"sync"
)

// Gateway keeps collection documents in process memory. Used by tests and as
// a throwaway dev backend; it honors the same contract as the durable ones.
type Gateway struct {
	mu        sync.Mutex
	documents map[string]json.RawMessage
}

func New() *Gateway {
	return &Gateway{
		documents: make(map[string]json.RawMessage),
	}
}

func (g *Gateway) Load(ctx context.Context, key string) (json.RawMessage, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	document, ok := g.documents[key]
	if !ok {
		return nil, nil
	}
	return append(json.RawMessage(nil), document...), nil
}

func (g *Gateway) Save(ctx context.Context, key string, document json.RawMessage) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.documents[key] = append(json.RawMessage(nil), document...)
	return nil
}

func (g *Gateway) Ping(ctx context.Context) error {
	return nil
}

func (g *Gateway) Close() error {
	return nil
}
