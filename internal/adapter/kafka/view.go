package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lovoo/goka"

	"github.com/evoshop/storefront/internal/core/port"
)

var _ port.CheckoutCounts = (*CheckoutCountsView)(nil)

// CheckoutCountsView reads the checkout counter group table.
type CheckoutCountsView struct {
	gv *goka.View
}

func NewCheckoutCountsView(
	seedBrokers []string, group string,
) (*CheckoutCountsView, error) {
	const op = "NewCheckoutCountsView"

	gv, err := goka.NewView(
		seedBrokers,
		goka.GroupTable(goka.Group(group)),
		checkoutCountCodec{},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &CheckoutCountsView{gv}, nil
}

func (v *CheckoutCountsView) Run(ctx context.Context) {
	const op = "CheckoutCountsView.Run"
	log := slog.With("op", op)

	err := v.gv.Run(ctx)
	if err != nil {
		log.Error("unexpected fail on run", "err", err)
	}
}

func (v *CheckoutCountsView) CheckoutCount(clientID string) (int64, error) {
	const op = "CheckoutCountsView.CheckoutCount"

	val, err := v.gv.Get(clientID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if val == nil {
		return 0, nil
	}

	cnt, ok := val.(int64)
	if !ok {
		return 0, fmt.Errorf("%s: %w: %T", op, ErrInvalidValueType, val)
	}
	return cnt, nil
}
