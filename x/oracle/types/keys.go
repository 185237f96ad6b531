package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "oracle"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_oracle"
)

const (
	// QuoteDecimals is the fixed scale of submitted quotes: USD per payment
	// token, multiplied by 10^8.
	QuoteDecimals = 8
)

var (
	// ParamsKey is the collections prefix for module params (Item)
	ParamsKey = collections.NewPrefix(0)

	// LatestQuoteKey is the collections prefix for the stored price quote (Item)
	LatestQuoteKey = collections.NewPrefix(1)
)
