package toast

import "context"

type ctxKey struct{}

// NewContext attaches the queue to ctx for the scope of a request.
func NewContext(ctx context.Context, q *Queue) context.Context {
	return context.WithValue(ctx, ctxKey{}, q)
}

// FromContext returns the queue attached to ctx. Calling it outside an
// initialized scope is a wiring bug, so it panics instead of degrading.
func FromContext(ctx context.Context) *Queue {
	q, ok := ctx.Value(ctxKey{}).(*Queue)
	if !ok {
		panic("toast: FromContext called outside an initialized scope")
	}
	return q
}
