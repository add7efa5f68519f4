package repository

import (
	"testing"

	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCreateAssignsUniqueIDs(t *testing.T) {
	products := NewProductRepo(store.NewMemoryStore())

	// Same-millisecond double submits must not collide.
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		p, err := products.Create(models.Product{Title: "P", Price: 1})
		require.NoError(t, err)
		require.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, products.List(), 10)
}

func TestProductUpdateMissing(t *testing.T) {
	products := NewProductRepo(store.NewMemoryStore())

	err := products.Update(models.Product{ID: "ghost", Title: "x", Price: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductUpsert(t *testing.T) {
	products := NewProductRepo(store.NewMemoryStore())

	created, err := products.Upsert(models.Product{ID: "imported-1", Title: "A", Price: 1})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = products.Upsert(models.Product{ID: "imported-1", Title: "B", Price: 2})
	require.NoError(t, err)
	assert.False(t, created)

	got, ok := products.Find("imported-1")
	require.True(t, ok)
	assert.Equal(t, "B", got.Title)
	assert.Len(t, products.List(), 1)
}

func TestProductDeleteWhere(t *testing.T) {
	products := NewProductRepo(store.NewMemoryStore())

	for _, p := range []models.Product{
		{Title: "a", Price: 1, Category: "Books"},
		{Title: "b", Price: 1, Category: "Books"},
		{Title: "c", Price: 1, Category: "Toys"},
	} {
		_, err := products.Create(p)
		require.NoError(t, err)
	}

	removed, err := products.DeleteWhere(func(p models.Product) bool {
		return p.Category == "Books"
	})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	remaining := products.List()
	require.Len(t, remaining, 1)
	assert.Equal(t, "Toys", remaining[0].Category)
}

func TestSeedSampleCatalog(t *testing.T) {
	s := store.NewMemoryStore()
	products := NewProductRepo(s)

	require.NoError(t, SeedSampleCatalog(s))
	seeded := products.List()
	assert.NotEmpty(t, seeded)

	// A second seed never clobbers an existing catalog.
	require.NoError(t, products.ReplaceAll(seeded[:1]))
	require.NoError(t, SeedSampleCatalog(s))
	assert.Len(t, products.List(), 1)
}
