package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/evoshop/storefront/internal/core/domain"
	"github.com/evoshop/storefront/internal/core/port"
)

// ErrFetchFailed marks a non-success status from the catalog endpoint.
var ErrFetchFailed = errors.New("failed to fetch products")

var _ port.ProductsFetcher = (*Client)(nil)

type (
	catalogResponse struct {
		Data []product `json:"data"`
	}

	product struct {
		ID              string       `json:"id"`
		Title           string       `json:"title"`
		Price           float64      `json:"price"`
		DiscountedPrice float64      `json:"discountedPrice"`
		Image           productImage `json:"image"`
	}

	productImage struct {
		URL string `json:"url"`
		Alt string `json:"alt"`
	}
)

// Client reads the remote product catalog: one GET to a fixed URL, no
// auth, no pagination.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string) Client {
	return Client{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "catalog.Client.FetchProducts"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s: status %s: %w", op, resp.Status, ErrFetchFailed)
	}

	var body catalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// A response without the data field is an empty catalog, not an error.
	return c.toDomain(body.Data), nil
}

func (Client) toDomain(vs []product) []domain.Product {
	ps := make([]domain.Product, 0, len(vs))
	for _, v := range vs {
		ps = append(ps, domain.Product{
			ID:              v.ID,
			Title:           v.Title,
			Price:           v.Price,
			DiscountedPrice: v.DiscountedPrice,
			Image: domain.ProductImage{
				URL: v.Image.URL,
				Alt: v.Image.Alt,
			},
		})
	}
	return ps
}
