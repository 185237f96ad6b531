package tokensale

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WolfZAlpha/prosdepth/x/tokensale/keeper"
	"github.com/WolfZAlpha/prosdepth/x/tokensale/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	for _, tier := range genState.TierList {
		if err := k.SetTier(ctx, tier); err != nil {
			panic(err)
		}
	}
	for _, buyer := range genState.BuyerList {
		if err := k.SetBuyer(ctx, buyer); err != nil {
			panic(err)
		}
	}
	if genState.FundAccounts != nil {
		if err := k.SetFundAccounts(ctx, *genState.FundAccounts); err != nil {
			panic(err)
		}
	}
	if err := k.SetSaleState(ctx, genState.SaleState); err != nil {
		panic(err)
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()

	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}
	genesis.Params = params

	state, err := k.GetSaleState(ctx)
	if err != nil {
		panic(err)
	}
	genesis.SaleState = state

	genesis.TierList = k.GetAllTiers(ctx)
	genesis.BuyerList = k.GetAllBuyers(ctx)

	if accounts, found := k.GetFundAccounts(ctx); found {
		genesis.FundAccounts = &accounts
	} else {
		genesis.FundAccounts = nil
	}

	return genesis
}
