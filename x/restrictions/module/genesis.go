package restrictions

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WolfZAlpha/prosdepth/x/restrictions/keeper"
	"github.com/WolfZAlpha/prosdepth/x/restrictions/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	for _, account := range genState.BlacklistedAccounts {
		addr, err := sdk.AccAddressFromBech32(account)
		if err != nil {
			panic(err)
		}
		if err := k.Blacklist.Set(ctx, addr); err != nil {
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
	genesis.BlacklistedAccounts = k.GetAllBlacklisted(ctx)

	return genesis
}
