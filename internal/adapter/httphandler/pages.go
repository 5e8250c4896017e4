package httphandler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/evoshop/storefront/internal/adapter/catalog"
	"github.com/evoshop/storefront/internal/core/domain"
	"github.com/evoshop/storefront/internal/core/service"
	"github.com/evoshop/storefront/internal/core/toast"
)

type (
	toastView struct {
		Message string
		Kind    string
	}

	productView struct {
		ID          string
		Title       string
		Price       float64
		UnitPrice   float64
		HasDiscount bool
		ImageURL    string
		ImageAlt    string
	}

	productsPage struct {
		Loading  bool
		Err      string
		Products []productView
		Toasts   []toastView
	}

	cartLineView struct {
		ProductID   string
		Title       string
		Quantity    int
		UnitPrice   float64
		FullPrice   float64
		LineTotal   float64
		HasDiscount bool
		ImageURL    string
		ImageAlt    string
	}

	cartPage struct {
		Items      []cartLineView
		TotalItems int
		TotalPrice float64
		Toasts     []toastView
	}

	successPage struct {
		FromCheckout bool
	}
)

// PagesHandler serves the storefront pages: product listing, cart and
// checkout confirmation.
type PagesHandler struct {
	svc    *service.Service
	loader *catalog.Loader
}

func RegisterPages(mux *http.ServeMux, svc *service.Service, loader *catalog.Loader) {
	h := PagesHandler{svc: svc, loader: loader}

	mux.HandleFunc("GET /{$}", h.products)
	mux.HandleFunc("GET /cart", h.cart)
	mux.HandleFunc("POST /cart/items", h.addItem)
	mux.HandleFunc("POST /cart/items/increase", h.increaseItem)
	mux.HandleFunc("POST /cart/items/decrease", h.decreaseItem)
	mux.HandleFunc("POST /cart/items/remove", h.removeItem)
	mux.HandleFunc("POST /checkout", h.checkout)
	mux.HandleFunc("GET /checkout/success", h.checkoutSuccess)
}

func (h PagesHandler) products(w http.ResponseWriter, r *http.Request) {
	h.loader.Load(r.Context())
	loading, ps, errMsg := h.loader.State()

	page := productsPage{
		Loading: loading,
		Err:     errMsg,
		Toasts:  flushToasts(r),
	}
	for _, p := range ps {
		page.Products = append(page.Products, productView{
			ID:          p.ID,
			Title:       p.Title,
			Price:       p.Price,
			UnitPrice:   p.EffectiveUnitPrice(),
			HasDiscount: p.DiscountedPrice < p.Price,
			ImageURL:    p.Image.URL,
			ImageAlt:    p.Image.Alt,
		})
	}

	render(w, "products", page)
}

func (h PagesHandler) cart(w http.ResponseWriter, r *http.Request) {
	items := h.svc.Items()
	totals := h.svc.Totals()

	page := cartPage{
		TotalItems: totals.TotalItems,
		TotalPrice: totals.TotalPrice,
		Toasts:     flushToasts(r),
	}
	for _, it := range items {
		unit := it.Product.EffectiveUnitPrice()
		page.Items = append(page.Items, cartLineView{
			ProductID:   it.Product.ID,
			Title:       it.Product.Title,
			Quantity:    it.Quantity,
			UnitPrice:   unit,
			FullPrice:   it.Product.Price,
			LineTotal:   unit * float64(it.Quantity),
			HasDiscount: it.Product.DiscountedPrice < it.Product.Price,
			ImageURL:    it.Product.Image.URL,
			ImageAlt:    it.Product.Image.Alt,
		})
	}

	render(w, "cart", page)
}

func (h PagesHandler) addItem(w http.ResponseWriter, r *http.Request) {
	productID := r.FormValue("product_id")
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil || quantity < 1 {
		quantity = 1
	}

	p, ok := h.loader.Product(productID)
	if !ok {
		toast.FromContext(r.Context()).Show("Product not found", domain.ToastError)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.svc.AddItem(r.Context(), p, quantity)
	toast.FromContext(r.Context()).Show("Added "+p.Title+" to cart", domain.ToastSuccess)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h PagesHandler) increaseItem(w http.ResponseWriter, r *http.Request) {
	productID := r.FormValue("product_id")
	if qty := h.svc.Quantity(productID); qty > 0 {
		h.svc.UpdateQuantity(r.Context(), productID, qty+1)
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// decreaseItem steps the quantity down; stepping below one removes the
// line item entirely.
func (h PagesHandler) decreaseItem(w http.ResponseWriter, r *http.Request) {
	productID := r.FormValue("product_id")

	qty := h.svc.Quantity(productID)
	switch {
	case qty == 0:
	case qty <= 1:
		h.remove(r, productID)
	default:
		h.svc.UpdateQuantity(r.Context(), productID, qty-1)
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h PagesHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	h.remove(r, r.FormValue("product_id"))
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h PagesHandler) remove(r *http.Request, productID string) {
	title := h.itemTitle(productID)
	h.svc.RemoveItem(r.Context(), productID)
	if title != "" {
		toast.FromContext(r.Context()).Show(
			"Removed "+title+" from cart", domain.ToastSuccess,
		)
	}
}

func (h PagesHandler) checkout(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Checkout(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			toast.FromContext(r.Context()).Show("Your cart is empty", domain.ToastError)
			http.Redirect(w, r, "/cart", http.StatusSeeOther)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	toast.FromContext(r.Context()).Show("Checkout successful!", domain.ToastSuccess)
	http.Redirect(w, r, "/checkout/success?from=checkout", http.StatusSeeOther)
}

// checkoutSuccess defensively clears a non-empty cart: arriving here means
// checkout finished, whatever path navigation took.
func (h PagesHandler) checkoutSuccess(w http.ResponseWriter, r *http.Request) {
	if len(h.svc.Items()) > 0 {
		h.svc.Clear(r.Context())
	}

	page := successPage{
		FromCheckout: r.URL.Query().Get("from") == "checkout",
	}
	render(w, "success", page)
}

func (h PagesHandler) itemTitle(productID string) string {
	for _, it := range h.svc.Items() {
		if it.Product.ID == productID {
			return it.Product.Title
		}
	}
	return ""
}

func flushToasts(r *http.Request) []toastView {
	var vs []toastView
	for _, t := range toast.FromContext(r.Context()).Flush() {
		vs = append(vs, toastView{Message: t.Message, Kind: string(t.Kind)})
	}
	return vs
}
