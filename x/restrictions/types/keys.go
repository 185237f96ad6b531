package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "restrictions"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_restrictions"
)

var (
	// ParamsKey is the collections prefix for module params (Item)
	ParamsKey = collections.NewPrefix(0)

	// BlacklistKey is the collections prefix for blacklisted accounts (KeySet)
	BlacklistKey = collections.NewPrefix(1)
)
