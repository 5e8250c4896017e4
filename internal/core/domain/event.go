package domain

type CartEventType string

const (
	EventItemAdded       CartEventType = "item_added"
	EventItemRemoved     CartEventType = "item_removed"
	EventQuantityUpdated CartEventType = "quantity_updated"
	EventCartCleared     CartEventType = "cart_cleared"
	EventCheckout        CartEventType = "checkout"
)

// CartEvent describes one applied cart transition for the analytics stream.
type CartEvent struct {
	ClientID   string
	Type       CartEventType
	ProductID  string
	Quantity   int
	OccurredAt int64 // unix milliseconds
}
