package repository

import (
	"testing"
	"time"

	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionPutOverwrites(t *testing.T) {
	sessions := NewSessionRepo(store.NewMemoryStore())

	require.NoError(t, sessions.Put(models.Session{ID: "1", Email: "a@example.com", LoginTime: time.Now()}))
	require.NoError(t, sessions.Put(models.Session{ID: "2", Email: "b@example.com", LoginTime: time.Now()}))

	got := sessions.Get()
	require.NotNil(t, got)
	assert.Equal(t, "b@example.com", got.Email)
}

func TestSessionAbsent(t *testing.T) {
	sessions := NewSessionRepo(store.NewMemoryStore())
	assert.Nil(t, sessions.Get())
}

func TestSessionClear(t *testing.T) {
	sessions := NewSessionRepo(store.NewMemoryStore())

	require.NoError(t, sessions.Put(models.Session{ID: "1", Email: "a@example.com"}))
	require.NoError(t, sessions.Clear())
	assert.Nil(t, sessions.Get())

	// Clearing an absent session is fine.
	assert.NoError(t, sessions.Clear())
}

func TestSessionCorruptBlobReadsAsLoggedOut(t *testing.T) {
	s := store.NewMemoryStore()
	sessions := NewSessionRepo(s)

	require.NoError(t, s.Put(keySession, []byte("garbage")))
	assert.Nil(t, sessions.Get())
}
