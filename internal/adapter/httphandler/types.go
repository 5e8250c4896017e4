package httphandler

type (
	CartItemResponse struct {
		ProductID string  `json:"product_id"`
		Title     string  `json:"title"`
		UnitPrice float64 `json:"unit_price"`
		Quantity  int     `json:"quantity"`
		LineTotal float64 `json:"line_total"`
	}

	CartResponse struct {
		Items      []CartItemResponse `json:"items"`
		TotalItems int                `json:"total_items"`
		TotalPrice float64            `json:"total_price"`
	}

	CheckoutsResponse struct {
		ClientID  string `json:"client_id"`
		Checkouts int64  `json:"checkouts"`
	}

	ErrorResponse struct {
		Error string `json:"error"`
	}
)
