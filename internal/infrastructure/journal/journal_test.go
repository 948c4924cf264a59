package journal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "journal.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetMissingKey(t *testing.T) {
	s := openStore(t)

	document, err := s.Get("games")

	require.NoError(t, err)
	assert.Nil(t, document)
}

func TestPutReplacesEarlierPendingVersion(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.Put("games", []byte(`[{"id":"old"}]`)))
	require.NoError(t, s.Put("games", []byte(`[{"id":"new"}]`)))

	document, err := s.Get("games")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"new"}]`, string(document))

	size, err := s.Size()
	require.NoError(t, err)
	assert.Equal(t, 1, size)
}

func TestDeleteDrainsKey(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.Put("games", []byte(`[]`)))
	require.NoError(t, s.Put("members", []byte(`[]`)))

	require.NoError(t, s.Delete("games"))

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"members"}, keys)
}

func TestSizeCountsPendingCollections(t *testing.T) {
	s := openStore(t)

	size, err := s.Size()
	require.NoError(t, err)
	assert.Zero(t, size)

	require.NoError(t, s.Put("games", []byte(`[]`)))
	require.NoError(t, s.Put("members", []byte(`[]`)))

	size, err = s.Size()
	require.NoError(t, err)
	assert.Equal(t, 2, size)
}
