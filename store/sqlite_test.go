package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s := openTestSQLite(t)

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Put("cart_a@example.com", []byte(`[{"id":"1","quantity":2}]`)))
	got, err := s.Get("cart_a@example.com")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","quantity":2}]`, string(got))

	// Put overwrites whole values.
	require.NoError(t, s.Put("cart_a@example.com", []byte(`[]`)))
	got, err = s.Get("cart_a@example.com")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, s.Delete("cart_a@example.com"))
	_, err = s.Get("cart_a@example.com")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSQLiteStoreKeys(t *testing.T) {
	s := openTestSQLite(t)

	require.NoError(t, s.Put("b", []byte("2")))
	require.NoError(t, s.Put("a", []byte("1")))

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestSQLiteStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Put("currentUser", []byte(`{"id":"1"}`)))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get("currentUser")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1"}`, string(got))
}
