package schema

const CartEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "cart_event",
	"fields" : [
		{"name": "client_id", "type": "string"},
		{"name": "event_type", "type": "string"},
		{"name": "product_id", "type": "string"},
		{"name": "quantity", "type": "long"},
		{"name": "occurred_at", "type": "long"}
	]
}`

// CartEventV1 is the wire shape of one cart transition on the analytics
// stream. product_id is empty for whole-cart events (clear, checkout).
type CartEventV1 struct {
	ClientID   string `avro:"client_id"`
	EventType  string `avro:"event_type"`
	ProductID  string `avro:"product_id"`
	Quantity   int64  `avro:"quantity"`
	OccurredAt int64  `avro:"occurred_at"`
}
