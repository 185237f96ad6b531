package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/WolfZAlpha/prosdepth/testutil/keeper"
	"github.com/WolfZAlpha/prosdepth/testutil/sample"
	lockvesting "github.com/WolfZAlpha/prosdepth/x/lockvesting/module"
	"github.com/WolfZAlpha/prosdepth/x/lockvesting/types"
)

func TestGenesis(t *testing.T) {
	genesisState := types.GenesisState{
		Params: types.NewParams(1000, 2000),
		GrantList: []types.VestingGrant{
			{
				Account:        sample.AccAddress(),
				TotalAmount:    math.NewInt(1000),
				ReleasedAmount: math.NewInt(400),
				StartTime:      100,
				EndTime:        200,
				Active:         true,
				ScheduleKind:   types.ScheduleKind_SCHEDULE_KIND_SHORT_TERM,
			},
			{
				Account:        sample.AccAddress(),
				TotalAmount:    math.NewInt(5000),
				ReleasedAmount: math.NewInt(5000),
				StartTime:      100,
				EndTime:        300,
				Active:         false,
				ScheduleKind:   types.ScheduleKind_SCHEDULE_KIND_LONG_TERM,
			},
		},
	}
	require.NoError(t, genesisState.Validate())

	k, ctx := keepertest.LockvestingKeeper(t)
	lockvesting.InitGenesis(ctx, k, genesisState)
	got := lockvesting.ExportGenesis(ctx, k)
	require.NotNil(t, got)

	require.Equal(t, genesisState.Params, got.Params)
	require.ElementsMatch(t, genesisState.GrantList, got.GrantList)
}

func TestGenesisValidate_Duplicates(t *testing.T) {
	account := sample.AccAddress()
	genesisState := types.GenesisState{
		Params: types.DefaultParams(),
		GrantList: []types.VestingGrant{
			{Account: account, TotalAmount: math.NewInt(1), ReleasedAmount: math.ZeroInt(), StartTime: 1, EndTime: 2, Active: true},
			{Account: account, TotalAmount: math.NewInt(1), ReleasedAmount: math.ZeroInt(), StartTime: 1, EndTime: 2, Active: true},
		},
	}
	require.Error(t, genesisState.Validate())
}

func TestGenesisValidate_OverReleased(t *testing.T) {
	genesisState := types.GenesisState{
		Params: types.DefaultParams(),
		GrantList: []types.VestingGrant{
			{Account: sample.AccAddress(), TotalAmount: math.NewInt(100), ReleasedAmount: math.NewInt(101), StartTime: 1, EndTime: 2, Active: true},
		},
	}
	require.Error(t, genesisState.Validate())
}
