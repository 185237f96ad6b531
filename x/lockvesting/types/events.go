package types

// Event types for lockvesting module
const (
	EventTypeCreateGrant    = "create_grant"
	EventTypeOverwriteGrant = "overwrite_grant"
	EventTypeRelease        = "release"
)

// Event attributes
const (
	AttributeKeyAccount         = "account"
	AttributeKeyAmount          = "amount"
	AttributeKeyScheduleKind    = "schedule_kind"
	AttributeKeyStartTime       = "start_time"
	AttributeKeyEndTime         = "end_time"
	AttributeKeyReleasedAmount  = "released_amount"
	AttributeKeyForfeitedAmount = "forfeited_amount"
)
