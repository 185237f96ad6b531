package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WolfZAlpha/prosdepth/x/lockvesting/types"
)

type (
	Keeper struct {
		cdc          codec.BinaryCodec
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of executing a MsgUpdateParams message. Typically, this
		// should be the x/gov module account.
		authority string

		bankKeeper            types.BankKeeper
		bookkeepingBankKeeper types.BookkeepingBankKeeper

		// Collections schema and stores
		Schema       collections.Schema
		params       collections.Item[types.Params]
		Grants       collections.Map[sdk.AccAddress, types.VestingGrant]
		releaseGuard collections.Item[uint64]
	}
)

func NewKeeper(
	cdc codec.BinaryCodec,
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,

	bankKeeper types.BankKeeper,
	bookkeepingBankKeeper types.BookkeepingBankKeeper,
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

		bankKeeper:            bankKeeper,
		bookkeepingBankKeeper: bookkeepingBankKeeper,
	}

	// Wire collections stores
	k.params = collections.NewItem(sb, types.ParamsKey, "params", codec.CollValue[types.Params](cdc))
	k.Grants = collections.NewMap(sb, types.GrantKey, "grants", sdk.AccAddressKey, codec.CollValue[types.VestingGrant](cdc))
	k.releaseGuard = collections.NewItem(sb, types.ReleaseGuardKey, "release_guard", collections.Uint64Value)

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

const (
	EscrowSubAccount = "vesting"
)

// SetGrant stores a vesting grant for an account
func (k Keeper) SetGrant(ctx context.Context, grant types.VestingGrant) {
	addr, err := sdk.AccAddressFromBech32(grant.Account)
	if err != nil {
		panic(err)
	}
	if err := k.Grants.Set(ctx, addr, grant); err != nil {
		panic(err)
	}
}

// GetGrant retrieves the vesting grant for an account
func (k Keeper) GetGrant(ctx context.Context, account string) (grant types.VestingGrant, found bool) {
	addr, err := sdk.AccAddressFromBech32(account)
	if err != nil {
		return grant, false
	}
	v, err := k.Grants.Get(ctx, addr)
	if err != nil {
		return grant, false
	}
	return v, true
}

// GetAllGrants retrieves all vesting grants
func (k Keeper) GetAllGrants(ctx context.Context) []types.VestingGrant {
	iter, err := k.Grants.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	values, err := iter.Values()
	if err != nil {
		panic(err)
	}
	return values
}

// ReleasableAmount returns the vested-but-unreleased amount of the account's
// grant at the given time. Accounts without an active grant have nothing
// releasable.
func (k Keeper) ReleasableAmount(ctx context.Context, account string, now int64) math.Int {
	grant, found := k.GetGrant(ctx, account)
	if !found || !grant.Active {
		return math.ZeroInt()
	}
	return grant.VestedAmount(now).Sub(grant.ReleasedAmount)
}

// Release moves every vested-but-unreleased unit of the account's grant into
// the released column and deactivates the grant once it is fully released.
// It is pure bookkeeping: the caller pays the returned delta out of escrow
// within the same message.
func (k Keeper) Release(ctx context.Context, account string, now int64) (math.Int, error) {
	grant, found := k.GetGrant(ctx, account)
	if !found {
		return math.ZeroInt(), types.ErrGrantNotFound.Wrapf("account %s", account)
	}
	if !grant.Active {
		return math.ZeroInt(), types.ErrGrantNotActive.Wrapf("account %s", account)
	}

	vested := grant.VestedAmount(now)
	delta := vested.Sub(grant.ReleasedAmount)
	if !delta.IsPositive() {
		return math.ZeroInt(), types.ErrNothingToRelease.Wrapf("account %s at time %d", account, now)
	}

	grant.ReleasedAmount = vested
	if grant.ReleasedAmount.Equal(grant.TotalAmount) {
		grant.Active = false
	}
	k.SetGrant(ctx, grant)

	return delta, nil
}

// CanTransfer reports whether the account may move the given amount of vesting
// tokens at the given time. Accounts without an active grant are unrestricted;
// accounts with one may only move what has already vested.
func (k Keeper) CanTransfer(ctx context.Context, account string, amount math.Int, now int64) bool {
	grant, found := k.GetGrant(ctx, account)
	if !found || !grant.Active {
		return true
	}
	return grant.ReleasedAmount.Add(amount).LTE(grant.VestedAmount(now))
}

// armReleaseGuard flags a release in progress. A second arm attempt inside the
// same message fails, which stops any re-entrant payout path.
func (k Keeper) armReleaseGuard(ctx context.Context) error {
	armed, err := k.releaseGuard.Has(ctx)
	if err != nil {
		return err
	}
	if armed {
		return types.ErrReentrantCall
	}
	return k.releaseGuard.Set(ctx, 1)
}

func (k Keeper) disarmReleaseGuard(ctx context.Context) {
	_ = k.releaseGuard.Remove(ctx)
}
