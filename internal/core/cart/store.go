package cart

import (
	"sync"

	"github.com/evoshop/storefront/internal/core/domain"
)

// CommitFn runs after every applied transition with a snapshot of the new
// state. It must not fail the transition: by the time it runs the new state
// is already visible.
type CommitFn func(items []domain.CartItem)

// Store holds the cart state and applies commands atomically with respect
// to observers. Callers never alias the internal slice: items go in and
// out by value copy.
type Store struct {
	mu     sync.Mutex
	items  []domain.CartItem
	commit CommitFn
}

// NewStore builds a store seeded with the reconciled items. commit may be
// nil when no persistence is attached (tests, ephemeral carts).
func NewStore(items []domain.CartItem, commit CommitFn) *Store {
	return &Store{items: copyItems(items), commit: commit}
}

// AddItem increments the quantity of an existing line item or appends a
// new one. Quantities below one count as one.
func (s *Store) AddItem(p domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.dispatch(addItem{product: p, quantity: quantity})
}

// RemoveItem deletes the matching line item. No-op when absent.
func (s *Store) RemoveItem(productID string) {
	s.dispatch(removeItem{productID: productID})
}

// UpdateQuantity sets the matching item's quantity to an absolute value.
// A quantity of zero or less removes the item. No-op when absent.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.dispatch(updateQuantity{productID: productID, quantity: quantity})
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.dispatch(clearCart{})
}

// Items returns a copy of the current line items in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyItems(s.items)
}

// Totals recomputes the derived totals from the current line items.
func (s *Store) Totals() domain.CartTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return calcTotals(s.items)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Quantity returns the current quantity for the product, zero when the
// product is not in the cart.
func (s *Store) Quantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.Product.ID == productID {
			return it.Quantity
		}
	}
	return 0
}

func (s *Store) dispatch(cmd command) {
	s.mu.Lock()
	s.items = reduce(s.items, cmd)
	snapshot := copyItems(s.items)
	s.mu.Unlock()

	if s.commit != nil {
		s.commit(snapshot)
	}
}
