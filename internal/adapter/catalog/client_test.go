package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoshop/storefront/internal/adapter/catalog"
)

func TestClientFetchProducts(t *testing.T) {
	t.Run("DecodesCatalogResponse", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
  "data": [
    {
      "id": "p1",
      "title": "Vanilla Perfume",
      "price": 2599.99,
      "discountedPrice": 2079.99,
      "image": {"url": "https://static.example.com/p1.jpg", "alt": "bottle"}
    },
    {"id": "p2", "title": "Toy Train", "price": 499.35, "discountedPrice": 499.35}
  ]
}`))
			},
		))
		defer srv.Close()

		c := catalog.NewClient(srv.URL)

		got, err := c.FetchProducts(context.Background())
		require.NoError(t, err)

		require.Len(t, got, 2)
		assert.Equal(t, "Vanilla Perfume", got[0].Title)
		assert.Equal(t, 2079.99, got[0].DiscountedPrice)
		assert.Equal(t, "https://static.example.com/p1.jpg", got[0].Image.URL)
	})

	t.Run("MissingDataFieldIsEmptyCatalog", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			},
		))
		defer srv.Close()

		c := catalog.NewClient(srv.URL)

		got, err := c.FetchProducts(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("NonSuccessStatusIsErrFetchFailed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		))
		defer srv.Close()

		c := catalog.NewClient(srv.URL)

		_, err := c.FetchProducts(context.Background())
		assert.ErrorIs(t, err, catalog.ErrFetchFailed)
	})

	t.Run("NetworkErrorIsNotErrFetchFailed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {},
		))
		srv.Close()

		c := catalog.NewClient(srv.URL)

		_, err := c.FetchProducts(context.Background())
		require.Error(t, err)
		assert.NotErrorIs(t, err, catalog.ErrFetchFailed)
	})

	t.Run("MalformedBodyFails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data": [`))
			},
		))
		defer srv.Close()

		c := catalog.NewClient(srv.URL)

		_, err := c.FetchProducts(context.Background())
		assert.Error(t, err)
	})
}
