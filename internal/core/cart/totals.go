package cart

import "github.com/evoshop/storefront/internal/core/domain"

func calcTotals(items []domain.CartItem) domain.CartTotals {
	var t domain.CartTotals
	for _, it := range items {
		t.TotalItems += it.Quantity
		t.TotalPrice += it.Product.EffectiveUnitPrice() * float64(it.Quantity)
	}
	return t
}
