package domain

// CartItem is one distinct product's presence in the cart.
// Quantity is always positive while the item exists.
type CartItem struct {
	Product  Product
	Quantity int
}

// CartTotals is derived from the line items and never stored.
type CartTotals struct {
	TotalItems int
	TotalPrice float64
}
