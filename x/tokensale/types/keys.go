package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "tokensale"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_tokensale"

	// TokenDenom is the base denomination of the sale token
	TokenDenom = "upros"

	// TokenBaseUnits is the number of base units in one whole sale token
	TokenBaseUnits = 1_000_000

	// QuoteScale is the scaling factor of the oracle's USD quote
	QuoteScale = 100_000_000
)

var (
	// ParamsKey is the collections prefix for module params (Item)
	ParamsKey = collections.NewPrefix(0)

	// SaleStateKey is the collections prefix for the sale state (Item)
	SaleStateKey = collections.NewPrefix(1)

	// TierKey is the collections prefix for the price tiers (Map)
	TierKey = collections.NewPrefix(2)

	// BuyerKey is the collections prefix for buyer records (Map)
	BuyerKey = collections.NewPrefix(3)

	// FundAccountsKey is the collections prefix for the fund accounts (Item)
	FundAccountsKey = collections.NewPrefix(4)

	// PurchaseGuardKey is the collections prefix for the re-entry guard flag (Item)
	PurchaseGuardKey = collections.NewPrefix(5)
)
