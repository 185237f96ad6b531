package types

// Event types and attribute keys
const (
	EventTypeBlacklistAccount   = "blacklist_account"
	EventTypeUnblacklistAccount = "unblacklist_account"

	AttributeKeyAccount = "account"
)
