package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePutGet(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Put("products", []byte(`[{"id":"1"}]`)))

	got, err := s.Get("products")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get("nope")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStorePutOverwrites(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Put("k", []byte("old")))
	require.NoError(t, s.Put("k", []byte("new")))

	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Put("k", []byte("v")))
	require.NoError(t, s.Delete("k"))

	_, err := s.Get("k")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting again is fine.
	assert.NoError(t, s.Delete("k"))
}

func TestMemoryStoreKeys(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Put("a", []byte("1")))
	require.NoError(t, s.Put("b", []byte("2")))

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, keys)
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Put("k", []byte("abc")))

	got, err := s.Get("k")
	require.NoError(t, err)
	got[0] = 'x'

	again, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
