package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/evoshop/storefront/internal/core/toast"
)

// WithToasts attaches the toast queue to every request's context.
// Handlers reach it through [toast.FromContext].
func WithToasts(q *toast.Queue, next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(toast.NewContext(r.Context(), q)))
	}
	return http.HandlerFunc(hf)
}

func LogRequests(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}
