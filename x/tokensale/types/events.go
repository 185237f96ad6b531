package types

// Event types and attribute keys
const (
	EventTypeBuyTokens          = "buy_tokens"
	EventTypeEndSale            = "end_sale"
	EventTypePauseSale          = "pause_sale"
	EventTypeResumeSale         = "resume_sale"
	EventTypeSetFundAccounts    = "set_fund_accounts"
	EventTypeUpdateFundAccounts = "update_fund_accounts"
	EventTypeWithdrawResidual   = "withdraw_residual"

	AttributeKeyBuyer        = "buyer"
	AttributeKeyPayment      = "payment"
	AttributeKeyTokens       = "tokens"
	AttributeKeyCost         = "cost"
	AttributeKeyTax          = "tax"
	AttributeKeyRefund       = "refund"
	AttributeKeyTier         = "tier"
	AttributeKeyTreasury     = "treasury"
	AttributeKeyTaxCollector = "tax_collector"
	AttributeKeyDenom        = "denom"
	AttributeKeyAmount       = "amount"
)
