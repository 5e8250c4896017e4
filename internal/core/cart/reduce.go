package cart

import "github.com/evoshop/storefront/internal/core/domain"

// The closed set of cart commands. Every transition is expressed as one
// of these and applied by reduce.
type (
	command interface{ isCommand() }

	addItem struct {
		product  domain.Product
		quantity int
	}

	removeItem struct {
		productID string
	}

	updateQuantity struct {
		productID string
		quantity  int
	}

	clearCart struct{}
)

func (addItem) isCommand()        {}
func (removeItem) isCommand()     {}
func (updateQuantity) isCommand() {}
func (clearCart) isCommand()      {}

// reduce is the pure transition function. It never mutates its input:
// the returned slice shares no backing array with items.
//
// Invariants on the way out: at most one line item per product id,
// every quantity positive, insertion order preserved.
func reduce(items []domain.CartItem, cmd command) []domain.CartItem {
	switch c := cmd.(type) {
	case addItem:
		for i := range items {
			if items[i].Product.ID == c.product.ID {
				next := copyItems(items)
				next[i].Quantity += c.quantity
				return next
			}
		}
		next := copyItems(items)
		return append(next, domain.CartItem{Product: c.product, Quantity: c.quantity})

	case removeItem:
		return dropItem(items, c.productID)

	case updateQuantity:
		if c.quantity <= 0 {
			return dropItem(items, c.productID)
		}
		next := copyItems(items)
		for i := range next {
			if next[i].Product.ID == c.productID {
				next[i].Quantity = c.quantity
			}
		}
		return next

	case clearCart:
		return nil
	}

	return copyItems(items)
}

func copyItems(items []domain.CartItem) []domain.CartItem {
	if len(items) == 0 {
		return nil
	}
	next := make([]domain.CartItem, len(items))
	copy(next, items)
	return next
}

func dropItem(items []domain.CartItem, productID string) []domain.CartItem {
	var next []domain.CartItem
	for _, it := range items {
		if it.Product.ID == productID {
			continue
		}
		next = append(next, it)
	}
	return next
}
