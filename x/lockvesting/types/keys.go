package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "lockvesting"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_lockvesting"

	// TokenDenom is the base denomination the vesting grants are held in
	TokenDenom = "upros"
)

var (
	// ParamsKey is the collections prefix for module params (Item)
	ParamsKey = collections.NewPrefix(0)

	// GrantKey is the collections prefix for storing vesting grants (Map)
	GrantKey = collections.NewPrefix(1)

	// ReleaseGuardKey is the collections prefix for the re-entry guard flag (Item)
	ReleaseGuardKey = collections.NewPrefix(2)
)
