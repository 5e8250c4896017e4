package catalog

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/evoshop/storefront/internal/core/domain"
	"github.com/evoshop/storefront/internal/core/port"
)

// Loader performs a single catalog fetch per lifetime and keeps the three
// observable states: loading until the attempt completes, the product list
// on success, a human-readable error message on failure. No retry, no
// polling.
type Loader struct {
	fetcher port.ProductsFetcher

	once sync.Once

	mu       sync.Mutex
	loading  bool
	products []domain.Product
	errMsg   string
}

func NewLoader(fetcher port.ProductsFetcher) *Loader {
	return &Loader{fetcher: fetcher, loading: true}
}

// Load runs the one fetch attempt. Subsequent calls are no-ops.
// A completion that arrives after ctx is done is discarded: released
// consumers never observe a stale result.
func (l *Loader) Load(ctx context.Context) {
	l.once.Do(func() { l.load(ctx) })
}

func (l *Loader) load(ctx context.Context) {
	const op = "catalog.Loader.load"

	ps, err := l.fetcher.FetchProducts(ctx)

	if ctx.Err() != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.loading = false
	if err != nil {
		slog.Warn("catalog fetch failed", "op", op, "err", err)
		l.products = nil
		l.errMsg = userMessage(err)
		return
	}

	l.products = ps
	l.errMsg = ""
}

// State returns the current loading flag, product list and error message.
func (l *Loader) State() (loading bool, products []domain.Product, errMsg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ps := make([]domain.Product, len(l.products))
	copy(ps, l.products)
	return l.loading, ps, l.errMsg
}

// Product looks up a loaded product by id.
func (l *Loader) Product(id string) (domain.Product, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func userMessage(err error) string {
	if errors.Is(err, ErrFetchFailed) {
		return "Failed to fetch products"
	}
	return "An error occurred"
}
