package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/evoshop/storefront/internal/core/cart"
	"github.com/evoshop/storefront/internal/core/domain"
	"github.com/evoshop/storefront/internal/core/port"
	"github.com/evoshop/storefront/internal/core/toast"
)

// ErrEmptyCart is returned by Checkout when there is nothing to check out.
var ErrEmptyCart = errors.New("cart is empty")

const persistTimeout = 5 * time.Second

// Service owns the client's cart store and toast queue. Every cart
// transition is followed by two fire-and-forget side effects: a snapshot
// write to the repository and a cart event for the analytics stream.
// Neither can fail a transition.
type Service struct {
	clientID string
	cart     *cart.Store
	toasts   *toast.Queue
	repo     port.CartRepository
	events   port.CartEventsProducer
}

// New reconciles previously stored state and builds the service.
// events may be nil when analytics is not configured.
func New(
	ctx context.Context,
	clientID string,
	repo port.CartRepository,
	events port.CartEventsProducer,
) *Service {
	s := &Service{
		clientID: clientID,
		repo:     repo,
		events:   events,
		toasts:   toast.NewQueue(),
	}
	s.cart = cart.NewStore(s.reconcile(ctx), s.persist)
	return s
}

// reconcile loads the stored cart. A missing value or an unreadable one
// both degrade to an empty cart; only the latter is worth a diagnostic.
func (s *Service) reconcile(ctx context.Context) []domain.CartItem {
	const op = "Service.reconcile"

	if s.repo == nil {
		return nil
	}

	items, err := s.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, port.ErrNoCart) {
			slog.Warn("failed to load stored cart, starting empty",
				"op", op, "err", err)
		}
		return nil
	}
	return items
}

func (s *Service) persist(items []domain.CartItem) {
	const op = "Service.persist"

	if s.repo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.repo.Save(ctx, items); err != nil {
		slog.Warn("failed to persist cart snapshot", "op", op, "err", err)
	}
}

func (s *Service) AddItem(ctx context.Context, p domain.Product, quantity int) {
	s.cart.AddItem(p, quantity)
	s.emit(ctx, domain.EventItemAdded, p.ID, quantity)
}

func (s *Service) RemoveItem(ctx context.Context, productID string) {
	s.cart.RemoveItem(productID)
	s.emit(ctx, domain.EventItemRemoved, productID, 0)
}

func (s *Service) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	s.cart.UpdateQuantity(productID, quantity)
	if quantity <= 0 {
		s.emit(ctx, domain.EventItemRemoved, productID, 0)
		return
	}
	s.emit(ctx, domain.EventQuantityUpdated, productID, quantity)
}

func (s *Service) Clear(ctx context.Context) {
	s.cart.Clear()
	s.emit(ctx, domain.EventCartCleared, "", 0)
}

// Checkout clears a non-empty cart and reports the checkout. An empty
// cart is left untouched.
func (s *Service) Checkout(ctx context.Context) error {
	const op = "Service.Checkout"

	if s.cart.Len() == 0 {
		return ErrEmptyCart
	}

	s.cart.Clear()
	s.emit(ctx, domain.EventCheckout, "", 0)
	slog.Info("checkout completed", "op", op, "clientID", s.clientID)
	return nil
}

func (s *Service) Items() []domain.CartItem {
	return s.cart.Items()
}

func (s *Service) Totals() domain.CartTotals {
	return s.cart.Totals()
}

func (s *Service) Quantity(productID string) int {
	return s.cart.Quantity(productID)
}

func (s *Service) Toasts() *toast.Queue {
	return s.toasts
}

func (s *Service) emit(ctx context.Context, t domain.CartEventType, productID string, quantity int) {
	const op = "Service.emit"

	if s.events == nil {
		return
	}

	evt := domain.CartEvent{
		ClientID:   s.clientID,
		Type:       t,
		ProductID:  productID,
		Quantity:   quantity,
		OccurredAt: time.Now().UnixMilli(),
	}

	if err := s.events.ProduceCartEvent(ctx, evt); err != nil {
		slog.Warn("failed to produce cart event", "op", op, "err", err)
	}
}
