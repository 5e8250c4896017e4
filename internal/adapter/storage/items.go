package storage

import (
	"encoding/json"

	"github.com/evoshop/storefront/internal/core/domain"
)

// Wire shape of a stored cart: the same JSON the web storefront kept under
// its local "cart" key, so old snapshots stay readable.
type (
	cartItem struct {
		Product  product `json:"product"`
		Quantity int     `json:"quantity"`
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

func encodeItems(items []domain.CartItem) ([]byte, error) {
	vs := make([]cartItem, 0, len(items))
	for _, it := range items {
		vs = append(vs, toWire(it))
	}
	return json.Marshal(vs)
}

func decodeItems(data []byte) ([]domain.CartItem, error) {
	var vs []cartItem
	if err := json.Unmarshal(data, &vs); err != nil {
		return nil, err
	}

	var items []domain.CartItem
	for _, v := range vs {
		items = append(items, toDomain(v))
	}
	return items, nil
}

func toWire(it domain.CartItem) cartItem {
	return cartItem{
		Product: product{
			ID:              it.Product.ID,
			Title:           it.Product.Title,
			Price:           it.Product.Price,
			DiscountedPrice: it.Product.DiscountedPrice,
			Image: productImage{
				URL: it.Product.Image.URL,
				Alt: it.Product.Image.Alt,
			},
		},
		Quantity: it.Quantity,
	}
}

func toDomain(v cartItem) domain.CartItem {
	return domain.CartItem{
		Product: domain.Product{
			ID:              v.Product.ID,
			Title:           v.Product.Title,
			Price:           v.Product.Price,
			DiscountedPrice: v.Product.DiscountedPrice,
			Image: domain.ProductImage{
				URL: v.Product.Image.URL,
				Alt: v.Product.Image.Alt,
			},
		},
		Quantity: v.Quantity,
	}
}
