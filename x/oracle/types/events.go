package types

// Event types
const (
	EventTypeSubmitPrice = "submit_price"
)

// Event attribute keys
const (
	AttributeKeyPrice     = "price"
	AttributeKeyUpdatedAt = "updated_at"
)
