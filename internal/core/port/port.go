package port

import (
	"context"
	"errors"

	"github.com/evoshop/storefront/internal/core/domain"
)

// ErrNoCart is returned by CartRepository.Load when nothing was stored yet.
var ErrNoCart = errors.New("no stored cart")

// CartRepository is the local key-value persistence layer for the cart.
// Save is a fire-and-forget side effect of a transition: callers log
// failures and move on.
type CartRepository interface {
	Load(context.Context) ([]domain.CartItem, error)
	Save(context.Context, []domain.CartItem) error
}

type ProductsFetcher interface {
	FetchProducts(context.Context) ([]domain.Product, error)
}

type CartEventsProducer interface {
	ProduceCartEvent(context.Context, domain.CartEvent) error
}

type CheckoutCounts interface {
	CheckoutCount(clientID string) (int64, error)
}
