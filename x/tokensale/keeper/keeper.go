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

	"github.com/WolfZAlpha/prosdepth/x/tokensale/types"
)

type (
	Keeper struct {
		cdc          codec.BinaryCodec
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of executing a MsgUpdateParams message. Typically, this
		// should be the x/gov module account.
		authority string

		accountKeeper         types.AccountKeeper
		bankKeeper            types.BankKeeper
		bookkeepingBankKeeper types.BookkeepingBankKeeper
		oracleKeeper          types.OracleKeeper

		// Collections schema and stores
		Schema        collections.Schema
		params        collections.Item[types.Params]
		saleState     collections.Item[types.SaleState]
		Tiers         collections.Map[uint64, types.Tier]
		Buyers        collections.Map[sdk.AccAddress, types.BuyerRecord]
		fundAccounts  collections.Item[types.FundAccounts]
		purchaseGuard collections.Item[uint64]
	}
)

func NewKeeper(
	cdc codec.BinaryCodec,
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,

	accountKeeper types.AccountKeeper,
	bankKeeper types.BankKeeper,
	bookkeepingBankKeeper types.BookkeepingBankKeeper,
	oracleKeeper types.OracleKeeper,
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

		accountKeeper:         accountKeeper,
		bankKeeper:            bankKeeper,
		bookkeepingBankKeeper: bookkeepingBankKeeper,
		oracleKeeper:          oracleKeeper,
	}

	// Wire collections stores
	k.params = collections.NewItem(sb, types.ParamsKey, "params", codec.CollValue[types.Params](cdc))
	k.saleState = collections.NewItem(sb, types.SaleStateKey, "sale_state", codec.CollValue[types.SaleState](cdc))
	k.Tiers = collections.NewMap(sb, types.TierKey, "tiers", collections.Uint64Key, codec.CollValue[types.Tier](cdc))
	k.Buyers = collections.NewMap(sb, types.BuyerKey, "buyers", sdk.AccAddressKey, codec.CollValue[types.BuyerRecord](cdc))
	k.fundAccounts = collections.NewItem(sb, types.FundAccountsKey, "fund_accounts", codec.CollValue[types.FundAccounts](cdc))
	k.purchaseGuard = collections.NewItem(sb, types.PurchaseGuardKey, "purchase_guard", collections.Uint64Value)

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

// GetSaleState returns the current sale state.
func (k Keeper) GetSaleState(ctx context.Context) (types.SaleState, error) {
	return k.saleState.Get(ctx)
}

// SetSaleState stores the sale state.
func (k Keeper) SetSaleState(ctx context.Context, state types.SaleState) error {
	return k.saleState.Set(ctx, state)
}

// GetTier returns the tier with the given id.
func (k Keeper) GetTier(ctx context.Context, id uint64) (types.Tier, error) {
	tier, err := k.Tiers.Get(ctx, id)
	if err != nil {
		return types.Tier{}, types.ErrTierNotFound.Wrapf("tier %d", id)
	}
	return tier, nil
}

// SetTier stores a tier.
func (k Keeper) SetTier(ctx context.Context, tier types.Tier) error {
	return k.Tiers.Set(ctx, tier.Id, tier)
}

// GetAllTiers returns every tier, ordered by id.
func (k Keeper) GetAllTiers(ctx context.Context) []types.Tier {
	iter, err := k.Tiers.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	values, err := iter.Values()
	if err != nil {
		panic(err)
	}
	return values
}

// GetBuyer returns the purchase record for an address. A missing record is a
// zero record.
func (k Keeper) GetBuyer(ctx context.Context, address string) types.BuyerRecord {
	addr, err := sdk.AccAddressFromBech32(address)
	if err != nil {
		return types.BuyerRecord{Address: address, TotalPaid: math.ZeroInt()}
	}
	record, err := k.Buyers.Get(ctx, addr)
	if err != nil {
		return types.BuyerRecord{Address: address, TotalPaid: math.ZeroInt()}
	}
	return record
}

// SetBuyer stores a purchase record.
func (k Keeper) SetBuyer(ctx context.Context, record types.BuyerRecord) error {
	addr, err := sdk.AccAddressFromBech32(record.Address)
	if err != nil {
		return err
	}
	return k.Buyers.Set(ctx, addr, record)
}

// GetAllBuyers returns every purchase record.
func (k Keeper) GetAllBuyers(ctx context.Context) []types.BuyerRecord {
	iter, err := k.Buyers.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	values, err := iter.Values()
	if err != nil {
		panic(err)
	}
	return values
}

// GetFundAccounts returns the proceeds accounts if they were set.
func (k Keeper) GetFundAccounts(ctx context.Context) (types.FundAccounts, bool) {
	accounts, err := k.fundAccounts.Get(ctx)
	if err != nil {
		return types.FundAccounts{}, false
	}
	return accounts, true
}

// SetFundAccounts stores the proceeds accounts.
func (k Keeper) SetFundAccounts(ctx context.Context, accounts types.FundAccounts) error {
	return k.fundAccounts.Set(ctx, accounts)
}

// armPurchaseGuard flags a purchase in progress. A second arm attempt inside
// the same message fails, which stops any re-entrant payment path.
func (k Keeper) armPurchaseGuard(ctx context.Context) error {
	armed, err := k.purchaseGuard.Has(ctx)
	if err != nil {
		return err
	}
	if armed {
		return types.ErrReentrantCall
	}
	return k.purchaseGuard.Set(ctx, 1)
}

func (k Keeper) disarmPurchaseGuard(ctx context.Context) {
	_ = k.purchaseGuard.Remove(ctx)
}
