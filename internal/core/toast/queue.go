package toast

import (
	"sync"
	"sync/atomic"

	"github.com/evoshop/storefront/internal/core/domain"
)

// Queue holds the live toasts in enqueue order. Ids come from a strictly
// monotonic counter, so they never collide and sort by creation.
type Queue struct {
	mu     sync.Mutex
	nextID atomic.Int64
	toasts []domain.Toast
}

func NewQueue() *Queue {
	return &Queue{}
}

// Show enqueues a toast and returns it. An empty kind defaults to success.
func (q *Queue) Show(message string, kind domain.ToastKind) domain.Toast {
	if kind == "" {
		kind = domain.ToastSuccess
	}

	t := domain.Toast{
		ID:      q.nextID.Add(1),
		Message: message,
		Kind:    kind,
	}

	q.mu.Lock()
	q.toasts = append(q.toasts, t)
	q.mu.Unlock()
	return t
}

// Dismiss removes the toast with the matching id. No-op when absent.
func (q *Queue) Dismiss(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return
		}
	}
}

// Toasts returns a copy of the live toasts in enqueue order.
func (q *Queue) Toasts() []domain.Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.toasts) == 0 {
		return nil
	}
	ts := make([]domain.Toast, len(q.toasts))
	copy(ts, q.toasts)
	return ts
}

// Flush returns the live toasts and dismisses them all. The page layer
// uses it to render each toast exactly once.
func (q *Queue) Flush() []domain.Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	ts := q.toasts
	q.toasts = nil
	return ts
}
