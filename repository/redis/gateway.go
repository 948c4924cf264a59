package redis

import (
	"context"
	"encoding/json"

	redislib "github.com/redis/go-redis/v9"
)

// Gateway is the Redis backend: each collection document is a single value
// under a prefixed key, overwritten wholesale on save.
type Gateway struct {
	client *redislib.Client
	prefix string
}

func New(client *redislib.Client, prefix string) *Gateway {
	if prefix == "" {
		prefix = "tracker:"
	}
	return &Gateway{
		client: client,
		prefix: prefix,
	}
}

func (g *Gateway) Load(ctx context.Context, key string) (json.RawMessage, error) {
	value, err := g.client.Get(ctx, g.key(key)).Bytes()
	if err != nil {
		if err == redislib.Nil {
			return nil, nil
		}
		return nil, err
	}
	return json.RawMessage(value), nil
}

func (g *Gateway) Save(ctx context.Context, key string, document json.RawMessage) error {
	return g.client.Set(ctx, g.key(key), []byte(document), 0).Err()
}

func (g *Gateway) Ping(ctx context.Context) error {
	return g.client.Ping(ctx).Err()
}

func (g *Gateway) Close() error {
	return g.client.Close()
}

func (g *Gateway) key(collection string) string {
	return g.prefix + collection
}
