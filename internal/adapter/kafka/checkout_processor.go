package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/lovoo/goka"

	"github.com/evoshop/storefront/internal/core/domain"
	"github.com/evoshop/storefront/pkg/schema"
)

type cartEventCodec struct {
	serde Serde
}

func newCartEventCodec(s Serde) cartEventCodec {
	return cartEventCodec{s}
}

func (c cartEventCodec) Encode(v any) ([]byte, error) {
	const op = "cartEventCodec.Encode"
	if _, ok := v.(schema.CartEventV1); !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidValueType)
	}
	return c.serde.Encode(v)
}

func (c cartEventCodec) Decode(data []byte) (any, error) {
	const op = "cartEventCodec.Decode"
	var s schema.CartEventV1
	err := c.serde.Decode(data, &s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

type checkoutCountCodec struct{}

func (checkoutCountCodec) Encode(v any) ([]byte, error) {
	const op = "checkoutCountCodec.Encode"
	cnt, ok := v.(int64)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidValueType)
	}
	return strconv.AppendInt([]byte(nil), cnt, 10), nil
}

func (checkoutCountCodec) Decode(data []byte) (any, error) {
	const op = "checkoutCountCodec.Decode"
	cnt, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cnt, nil
}

// CheckoutCounterProcessor folds the cart events stream into a per-client
// checkout count kept in the group table.
type CheckoutCounterProcessor struct {
	gp *goka.Processor
}

func NewCheckoutCounterProcessor(
	seedBrokers []string, stream, group string, cartEventSerde Serde,
) (*CheckoutCounterProcessor, error) {
	const op = "NewCheckoutCounterProcessor"

	p := &CheckoutCounterProcessor{}

	gg := goka.DefineGroup(goka.Group(group),
		goka.Input(goka.Stream(stream), newCartEventCodec(cartEventSerde), p.processFn),
		goka.Persist(checkoutCountCodec{}),
	)

	gp, err := goka.NewProcessor(seedBrokers, gg, withNonlogProcOpt())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p.gp = gp
	return p, nil
}

func (p *CheckoutCounterProcessor) processFn(ctx goka.Context, msg any) {
	s, ok := msg.(schema.CartEventV1)
	if !ok {
		return
	}
	if s.EventType != string(domain.EventCheckout) {
		return
	}

	var cnt int64
	if v := ctx.Value(); v != nil {
		cnt = v.(int64)
	}
	ctx.SetValue(cnt + 1)
}

func (p *CheckoutCounterProcessor) Run(ctx context.Context) {
	const op = "CheckoutCounterProcessor.Run"
	log := slog.With("op", op)

	err := p.gp.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p *CheckoutCounterProcessor) Close() {
	const op = "CheckoutCounterProcessor.Close"
	log := slog.With("op", op)

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}
