package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the Store contract against any backend.
func exerciseStore(t *testing.T, store Store) {
	t.Helper()

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("greeting", "hello"))
	value, ok, err := store.Get("greeting")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hello", value)

	require.NoError(t, store.Set("greeting", "bonjour"))
	value, _, err = store.Get("greeting")
	require.NoError(t, err)
	assert.Equal(t, "bonjour", value)

	require.NoError(t, store.Delete("greeting"))
	_, ok, err = store.Get("greeting")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete("greeting"))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "db"))
	require.NoError(t, err)
	exerciseStore(t, store)
}

func TestFileStore_KeysCannotEscapeDirectory(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("../outside", "x"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), "..")

	value, ok, err := store.Get("../outside")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", value)
}

func TestFileStore_ValuesPersistAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	first, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set("mappings", "a: 1\n"))

	second, err := NewFileStore(dir)
	require.NoError(t, err)
	value, ok, err := second.Get("mappings")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a: 1\n", value)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankstmt.db")
	store, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, path, store.Path())
	exerciseStore(t, store)
}

func TestSQLiteStore_ValuesPersistAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankstmt.db")

	first, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("category_rules", "- keyword: zomato\n"))
	require.NoError(t, first.Close())

	second, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()

	value, ok, err := second.Get("category_rules")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "- keyword: zomato\n", value)
}
