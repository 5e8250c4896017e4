package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/evoshop/storefront/internal/core/domain"
	"github.com/evoshop/storefront/internal/core/port"
	"github.com/evoshop/storefront/internal/core/service"
)

// GET /api/cart (200 OK)
// GET /api/checkouts (200 OK, 503 Service unavailable without analytics)

type CartHandler struct {
	svc *service.Service
}

func RegisterCart(mux *http.ServeMux, svc *service.Service) {
	h := CartHandler{svc}
	mux.HandleFunc("GET /api/cart", h.GetCart)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	resp := h.toResponse(h.svc.Items(), h.svc.Totals())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func (CartHandler) toResponse(
	items []domain.CartItem, totals domain.CartTotals,
) CartResponse {
	resp := CartResponse{
		Items:      make([]CartItemResponse, 0, len(items)),
		TotalItems: totals.TotalItems,
		TotalPrice: totals.TotalPrice,
	}
	for _, it := range items {
		unit := it.Product.EffectiveUnitPrice()
		resp.Items = append(resp.Items, CartItemResponse{
			ProductID: it.Product.ID,
			Title:     it.Product.Title,
			UnitPrice: unit,
			Quantity:  it.Quantity,
			LineTotal: unit * float64(it.Quantity),
		})
	}
	return resp
}

type CheckoutsHandler struct {
	counts   port.CheckoutCounts
	clientID string
}

// RegisterCheckouts wires the checkout counter endpoint. counts may be nil
// when analytics is not configured; the endpoint then reports unavailable.
func RegisterCheckouts(mux *http.ServeMux, counts port.CheckoutCounts, clientID string) {
	h := CheckoutsHandler{counts, clientID}
	mux.HandleFunc("GET /api/checkouts", h.GetCheckouts)
}

func (h CheckoutsHandler) GetCheckouts(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutsHandler.GetCheckouts"
	log := slog.With("op", op)

	w.Header().Set("Content-Type", "application/json")

	if h.counts == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "analytics is not configured"})
		return
	}

	cnt, err := h.counts.CheckoutCount(h.clientID)
	if err != nil {
		log.Error("failed to read checkout count", "err", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "checkout counts unavailable"})
		return
	}

	resp := CheckoutsResponse{ClientID: h.clientID, Checkouts: cnt}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}
