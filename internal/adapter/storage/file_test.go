package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoshop/storefront/internal/adapter/storage"
	"github.com/evoshop/storefront/internal/core/domain"
	"github.com/evoshop/storefront/internal/core/port"
)

func TestFileRepository(t *testing.T) {
	t.Run("LoadBeforeAnySaveReturnsErrNoCart", func(t *testing.T) {
		repo, err := storage.NewFileRepository(t.TempDir())
		require.NoError(t, err)

		_, err = repo.Load(context.Background())

		assert.ErrorIs(t, err, port.ErrNoCart)
	})

	t.Run("SaveLoadRoundTrip", func(t *testing.T) {
		repo, err := storage.NewFileRepository(t.TempDir())
		require.NoError(t, err)

		items := []domain.CartItem{
			{
				Product: domain.Product{
					ID:              "p1",
					Title:           "Vanilla Perfume",
					Price:           2599.99,
					DiscountedPrice: 2079.99,
					Image: domain.ProductImage{
						URL: "https://static.example.com/p1.jpg",
						Alt: "White perfume bottle",
					},
				},
				Quantity: 2,
			},
			{
				Product: domain.Product{
					ID:    "p2",
					Title: "Toy Train",
					Price: 499.35,
				},
				Quantity: 1,
			},
		}

		require.NoError(t, repo.Save(context.Background(), items))

		got, err := repo.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("SaveOverwritesPreviousSnapshot", func(t *testing.T) {
		repo, err := storage.NewFileRepository(t.TempDir())
		require.NoError(t, err)

		first := []domain.CartItem{
			{Product: domain.Product{ID: "p1", Title: "One"}, Quantity: 1},
		}
		require.NoError(t, repo.Save(context.Background(), first))
		require.NoError(t, repo.Save(context.Background(), nil))

		got, err := repo.Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("LoadMalformedSnapshotFails", func(t *testing.T) {
		dir := t.TempDir()
		repo, err := storage.NewFileRepository(dir)
		require.NoError(t, err)

		path := filepath.Join(dir, "cart.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"not":"a list"`), 0o644))

		_, err = repo.Load(context.Background())

		require.Error(t, err)
		assert.NotErrorIs(t, err, port.ErrNoCart)
	})

	t.Run("LoadsWebStorefrontSnapshot", func(t *testing.T) {
		dir := t.TempDir()
		repo, err := storage.NewFileRepository(dir)
		require.NoError(t, err)

		snapshot := `[
  {
    "product": {
      "id": "p1",
      "title": "Vanilla Perfume",
      "price": 2599.99,
      "discountedPrice": 2079.99,
      "image": {"url": "https://static.example.com/p1.jpg", "alt": "bottle"}
    },
    "quantity": 3
  }
]`
		path := filepath.Join(dir, "cart.json")
		require.NoError(t, os.WriteFile(path, []byte(snapshot), 0o644))

		got, err := repo.Load(context.Background())
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, "Vanilla Perfume", got[0].Product.Title)
		assert.Equal(t, 2079.99, got[0].Product.DiscountedPrice)
		assert.Equal(t, 3, got[0].Quantity)
	})

	t.Run("CancelledContextFailsFast", func(t *testing.T) {
		repo, err := storage.NewFileRepository(t.TempDir())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = repo.Load(ctx)
		assert.ErrorIs(t, err, context.Canceled)

		err = repo.Save(ctx, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
