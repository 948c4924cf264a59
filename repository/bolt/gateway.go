package bolt

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Gateway is the embedded backend: collection documents live in a single
// BoltDB bucket on local disk.
type Gateway struct {
	db     *bolt.DB
	bucket []byte
}

// Open initializes the database file and ensures the collections bucket exists.
func Open(path string, bucket string) (*Gateway, error) {
	if bucket == "" {
		bucket = "collections"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Gateway{
		db:     db,
		bucket: []byte(bucket),
	}, nil
}

func (g *Gateway) Load(ctx context.Context, key string) (json.RawMessage, error) {
	if g == nil || g.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}
	var document json.RawMessage
	err := g.db.View(func(tx *bolt.Tx) error {
		if value := tx.Bucket(g.bucket).Get([]byte(key)); value != nil {
			document = append(json.RawMessage(nil), value...)
		}
		return nil
	})
	return document, err
}

func (g *Gateway) Save(ctx context.Context, key string, document json.RawMessage) error {
	if g == nil || g.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return g.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(g.bucket).Put([]byte(key), document)
	})
}

func (g *Gateway) Ping(ctx context.Context) error {
	if g == nil || g.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return g.db.View(func(tx *bolt.Tx) error { return nil })
}

func (g *Gateway) Close() error {
	if g == nil || g.db == nil {
		return nil
	}
	return g.db.Close()
}
