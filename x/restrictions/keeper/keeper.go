package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WolfZAlpha/prosdepth/x/restrictions/types"
)

type (
	Keeper struct {
		cdc          codec.BinaryCodec
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of mutating the blacklist. Typically, this
		// should be the x/gov module account.
		authority string

		accountKeeper types.AccountKeeper
		vestingKeeper types.VestingKeeper

		// Collections schema and stores
		Schema    collections.Schema
		params    collections.Item[types.Params]
		Blacklist collections.KeySet[sdk.AccAddress]
	}
)

func NewKeeper(
	cdc codec.BinaryCodec,
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,

	accountKeeper types.AccountKeeper,
	vestingKeeper types.VestingKeeper,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		cdc:          cdc,
		storeService: storeService,
		authority:    authority,
		logger:       logger,

		accountKeeper: accountKeeper,
		vestingKeeper: vestingKeeper,
	}

	// Wire collections stores
	k.params = collections.NewItem(sb, types.ParamsKey, "params", codec.CollValue[types.Params](cdc))
	k.Blacklist = collections.NewKeySet(sb, types.BlacklistKey, "blacklist", sdk.AccAddressKey)

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// IsBlacklisted reports whether the address is on the transfer blacklist.
func (k Keeper) IsBlacklisted(ctx context.Context, addr sdk.AccAddress) bool {
	has, err := k.Blacklist.Has(ctx, addr)
	if err != nil {
		return false
	}
	return has
}

// SetBlacklisted adds an address to the blacklist. Adding an address twice is
// an error so a governance proposal replaying stale state fails loudly.
func (k Keeper) SetBlacklisted(ctx context.Context, addr sdk.AccAddress) error {
	if k.IsBlacklisted(ctx, addr) {
		return types.ErrAlreadyBlacklisted.Wrapf("account %s", addr.String())
	}
	return k.Blacklist.Set(ctx, addr)
}

// RemoveBlacklisted drops an address from the blacklist.
func (k Keeper) RemoveBlacklisted(ctx context.Context, addr sdk.AccAddress) error {
	if !k.IsBlacklisted(ctx, addr) {
		return types.ErrNotBlacklisted.Wrapf("account %s", addr.String())
	}
	return k.Blacklist.Remove(ctx, addr)
}

// GetAllBlacklisted returns every blacklisted address, bech32-encoded.
func (k Keeper) GetAllBlacklisted(ctx context.Context) []string {
	iter, err := k.Blacklist.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	keys, err := iter.Keys()
	if err != nil {
		panic(err)
	}
	accounts := make([]string, 0, len(keys))
	for _, key := range keys {
		accounts = append(accounts, key.String())
	}
	return accounts
}
