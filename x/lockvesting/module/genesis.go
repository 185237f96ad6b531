package lockvesting

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WolfZAlpha/prosdepth/x/lockvesting/keeper"
	"github.com/WolfZAlpha/prosdepth/x/lockvesting/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	// Set all the vesting grants
	for _, elem := range genState.GrantList {
		k.SetGrant(ctx, elem)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)
	genesis.GrantList = k.GetAllGrants(ctx)

	return genesis
}
