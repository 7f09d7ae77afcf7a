package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *TokenStore {
	t.Helper()
	store, err := NewTokenStore(filepath.Join(t.TempDir(), "session", "tokens.json"))
	require.NoError(t, err)
	return store
}

func TestTokenStoreSaveAndRead(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Save("access-token", "refresh-token"))
	assert.Equal(t, "access-token", store.Access())
	assert.Equal(t, "refresh-token", store.Refresh())
}

func TestTokenStoreEmptyWhenAbsent(t *testing.T) {
	store := newStore(t)

	assert.Equal(t, "", store.Access())
	assert.Equal(t, "", store.Refresh())
}

func TestTokenStoreClear(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Save("access-token", ""))
	require.NoError(t, store.Clear())
	assert.Equal(t, "", store.Access())

	// clearing twice must not fail
	require.NoError(t, store.Clear())
}

func TestTokenStoreReadsFileOnEveryCall(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Save("first", ""))
	require.Equal(t, "first", store.Access())

	// a second writer replacing the file is picked up immediately
	require.NoError(t, store.Save("second", ""))
	assert.Equal(t, "second", store.Access())
}

func TestTokenStoreCorruptFileTreatedAsAbsent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.json")
	store, err := NewTokenStore(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	assert.Equal(t, "", store.Access())
}
