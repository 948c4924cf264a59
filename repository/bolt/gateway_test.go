package bolt

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openGateway(t *testing.T) *Gateway {
	t.Helper()
	gw, err := Open(filepath.Join(t.TempDir(), "tracker.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { gw.Close() })
	return gw
}

func TestLoadMissingKey(t *testing.T) {
	gw := openGateway(t)

	document, err := gw.Load(context.Background(), "games")

	require.NoError(t, err)
	assert.Nil(t, document)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	gw := openGateway(t)
	original := json.RawMessage(`[{"id":"g1","name":"Hollow Depths"}]`)

	require.NoError(t, gw.Save(context.Background(), "games", original))

	loaded, err := gw.Load(context.Background(), "games")
	require.NoError(t, err)
	assert.JSONEq(t, string(original), string(loaded))
}

func TestSaveReplacesDocument(t *testing.T) {
	gw := openGateway(t)
	require.NoError(t, gw.Save(context.Background(), "games", json.RawMessage(`[]`)))
	require.NoError(t, gw.Save(context.Background(), "games", json.RawMessage(`[{"id":"g1"}]`)))

	loaded, err := gw.Load(context.Background(), "games")

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"g1"}]`, string(loaded))
}

func TestPing(t *testing.T) {
	gw := openGateway(t)

	assert.NoError(t, gw.Ping(context.Background()))
}

func TestSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracker.db")

	gw, err := Open(path, "")
	require.NoError(t, err)
	require.NoError(t, gw.Save(context.Background(), "members", json.RawMessage(`[{"id":"m1"}]`)))
	require.NoError(t, gw.Close())

	reopened, err := Open(path, "")
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load(context.Background(), "members")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"m1"}]`, string(loaded))
}
