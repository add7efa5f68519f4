package repository

import (
	"testing"

	"github.com/hassandev/storefront-api/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndFind(t *testing.T) {
	users := NewUserRepo(store.NewMemoryStore())

	created, err := users.Create("alice", "alice@example.com", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	found, ok := users.FindByEmail("alice@example.com")
	require.True(t, ok)
	assert.Equal(t, created, found)
}

func TestUserCreateTrimsFields(t *testing.T) {
	users := NewUserRepo(store.NewMemoryStore())

	created, err := users.Create("  alice  ", "  alice@example.com  ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "alice@example.com", created.Email)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	users := NewUserRepo(store.NewMemoryStore())

	_, err := users.Create("alice", "alice@example.com", "secret")
	require.NoError(t, err)

	_, err = users.Create("alice2", "alice@example.com", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, users.List(), 1)
}

func TestUserDelete(t *testing.T) {
	users := NewUserRepo(store.NewMemoryStore())

	created, err := users.Create("alice", "alice@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, users.Delete(created.ID))
	assert.Empty(t, users.List())

	// Unknown id is a no-op.
	assert.NoError(t, users.Delete("ghost"))
}

func TestUserUpdate(t *testing.T) {
	users := NewUserRepo(store.NewMemoryStore())

	created, err := users.Create("alice", "alice@example.com", "secret")
	require.NoError(t, err)

	created.Password = "changed"
	require.NoError(t, users.Update(created))

	found, ok := users.FindByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, "changed", found.Password)
}
