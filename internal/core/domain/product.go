package domain

type (
	Product struct {
		ID              string
		Title           string
		Price           float64
		DiscountedPrice float64
		Image           ProductImage
	}

	ProductImage struct {
		URL string
		Alt string
	}
)

// EffectiveUnitPrice is the price actually charged per unit:
// the discounted price when a discount applies, the full price otherwise.
func (p Product) EffectiveUnitPrice() float64 {
	if p.DiscountedPrice < p.Price {
		return p.DiscountedPrice
	}
	return p.Price
}
