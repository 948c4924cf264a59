package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Gateway is the Postgres backend: one row per collection key with the whole
// document in a jsonb column, overwritten on save.
type Gateway struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Gateway {
	return &Gateway{pool: pool}
}

func (g *Gateway) Load(ctx context.Context, key string) (json.RawMessage, error) {
	const query = `SELECT document FROM collections WHERE key = $1`

	var document []byte
	if err := g.pool.QueryRow(ctx, query, key).Scan(&document); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return json.RawMessage(document), nil
}

func (g *Gateway) Save(ctx context.Context, key string, document json.RawMessage) error {
	const query = `
	INSERT INTO collections (key, document)
	VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE
	SET document = EXCLUDED.document,
		updated_at = NOW()
	`
	_, err := g.pool.Exec(ctx, query, key, []byte(document))
	return err
}

func (g *Gateway) Ping(ctx context.Context) error {
	return g.pool.Ping(ctx)
}

func (g *Gateway) Close() error {
	g.pool.Close()
	return nil
}
