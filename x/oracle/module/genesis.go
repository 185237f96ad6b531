package oracle

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WolfZAlpha/prosdepth/x/oracle/keeper"
	"github.com/WolfZAlpha/prosdepth/x/oracle/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	if genState.LatestQuote != nil {
		if err := k.SetQuote(ctx, *genState.LatestQuote); err != nil {
			panic(err)
		}
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)

	if quote, err := k.GetLatestQuote(ctx); err == nil {
		genesis.LatestQuote = &quote
	}

	return genesis
}
