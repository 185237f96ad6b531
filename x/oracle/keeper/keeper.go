package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WolfZAlpha/prosdepth/x/oracle/types"
)

type (
	Keeper struct {
		cdc          codec.BinaryCodec
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of executing a MsgSubmitPrice message. Typically, this
		// should be the x/gov module account.
		authority string

		// Collections schema and stores
		Schema      collections.Schema
		params      collections.Item[types.Params]
		latestQuote collections.Item[types.PriceQuote]
	}
)

func NewKeeper(
	cdc codec.BinaryCodec,
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,
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
	}

	// Wire collections stores
	k.params = collections.NewItem(sb, types.ParamsKey, "params", codec.CollValue[types.Params](cdc))
	k.latestQuote = collections.NewItem(sb, types.LatestQuoteKey, "latest_quote", codec.CollValue[types.PriceQuote](cdc))

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

// SetQuote stores a price quote as the latest observation.
func (k Keeper) SetQuote(ctx context.Context, quote types.PriceQuote) error {
	return k.latestQuote.Set(ctx, quote)
}

// GetLatestQuote retrieves the most recently stored price quote.
// Returns ErrNoQuote if no quote has ever been submitted.
func (k Keeper) GetLatestQuote(ctx context.Context) (types.PriceQuote, error) {
	quote, err := k.latestQuote.Get(ctx)
	if err != nil {
		return types.PriceQuote{}, types.ErrNoQuote
	}
	return quote, nil
}

// HasQuote reports whether a price quote has been stored.
func (k Keeper) HasQuote(ctx context.Context) bool {
	has, err := k.latestQuote.Has(ctx)
	if err != nil {
		return false
	}
	return has
}
