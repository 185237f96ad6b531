package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	keepertest "github.com/WolfZAlpha/prosdepth/testutil/keeper"
	"github.com/WolfZAlpha/prosdepth/testutil/sample"
	"github.com/WolfZAlpha/prosdepth/x/lockvesting/keeper"
	"github.com/WolfZAlpha/prosdepth/x/lockvesting/types"
)

type MsgServerTestSuite struct {
	suite.Suite
	ctx       sdk.Context
	keeper    keeper.Keeper
	msgServer types.MsgServer
	mocks     keepertest.LockvestingMocks
	authority string
}

func (suite *MsgServerTestSuite) SetupTest() {
	k, ctx, mocks := keepertest.LockvestingKeeperWithMocks(suite.T())
	suite.ctx = ctx.WithBlockTime(time.Unix(1_000_000, 0))
	suite.keeper = k
	suite.msgServer = keeper.NewMsgServerImpl(k)
	suite.mocks = mocks
	suite.authority = authtypes.NewModuleAddress(govtypes.ModuleName).String()
}

func TestMsgServerTestSuite(t *testing.T) {
	suite.Run(t, new(MsgServerTestSuite))
}

func (suite *MsgServerTestSuite) TestCreateGrant() {
	account := sample.AccAddress()
	amount := sdk.NewInt64Coin(types.TokenDenom, 1000)
	authorityAddr, err := sdk.AccAddressFromBech32(suite.authority)
	suite.Require().NoError(err)

	suite.mocks.BankKeeper.EXPECT().SendCoinsFromAccountToModule(
		gomock.Any(), authorityAddr, types.ModuleName, sdk.NewCoins(amount), gomock.Any()).Return(nil)
	suite.mocks.BankKeeper.EXPECT().LogSubAccountTransaction(
		gomock.Any(), types.ModuleName, account, keeper.EscrowSubAccount, amount, gomock.Any())

	_, err = suite.msgServer.CreateGrant(suite.ctx, &types.MsgCreateGrant{
		Authority:    suite.authority,
		Account:      account,
		Amount:       amount,
		ScheduleKind: types.ScheduleKind_SCHEDULE_KIND_SHORT_TERM,
	})
	suite.Require().NoError(err)

	grant, found := suite.keeper.GetGrant(suite.ctx, account)
	suite.Require().True(found)
	suite.Require().Equal(math.NewInt(1000), grant.TotalAmount)
	suite.Require().Equal(math.ZeroInt(), grant.ReleasedAmount)
	suite.Require().True(grant.Active)
	suite.Require().Equal(int64(1_000_000), grant.StartTime)
	suite.Require().Equal(int64(1_000_000)+int64(types.DefaultShortTermSeconds), grant.EndTime)
}

func (suite *MsgServerTestSuite) TestCreateGrant_WrongAuthority() {
	_, err := suite.msgServer.CreateGrant(suite.ctx, &types.MsgCreateGrant{
		Authority:    sample.AccAddress(),
		Account:      sample.AccAddress(),
		Amount:       sdk.NewInt64Coin(types.TokenDenom, 1000),
		ScheduleKind: types.ScheduleKind_SCHEDULE_KIND_SHORT_TERM,
	})
	suite.Require().ErrorIs(err, types.ErrInvalidSigner)
}

func (suite *MsgServerTestSuite) TestCreateGrant_WrongDenom() {
	_, err := suite.msgServer.CreateGrant(suite.ctx, &types.MsgCreateGrant{
		Authority:    suite.authority,
		Account:      sample.AccAddress(),
		Amount:       sdk.NewInt64Coin("ustake", 1000),
		ScheduleKind: types.ScheduleKind_SCHEDULE_KIND_SHORT_TERM,
	})
	suite.Require().ErrorIs(err, types.ErrInvalidDenom)
}

func (suite *MsgServerTestSuite) TestCreateGrant_ZeroAmount() {
	_, err := suite.msgServer.CreateGrant(suite.ctx, &types.MsgCreateGrant{
		Authority:    suite.authority,
		Account:      sample.AccAddress(),
		Amount:       sdk.NewInt64Coin(types.TokenDenom, 0),
		ScheduleKind: types.ScheduleKind_SCHEDULE_KIND_SHORT_TERM,
	})
	suite.Require().ErrorIs(err, types.ErrInvalidGrantAmount)
}

func (suite *MsgServerTestSuite) TestCreateGrant_UnknownScheduleKind() {
	_, err := suite.msgServer.CreateGrant(suite.ctx, &types.MsgCreateGrant{
		Authority:    suite.authority,
		Account:      sample.AccAddress(),
		Amount:       sdk.NewInt64Coin(types.TokenDenom, 1000),
		ScheduleKind: types.ScheduleKind_SCHEDULE_KIND_UNSPECIFIED,
	})
	suite.Require().ErrorIs(err, types.ErrInvalidScheduleKind)
}

func (suite *MsgServerTestSuite) TestCreateGrant_OverwriteFoldsUnreleased() {
	account := sample.AccAddress()
	suite.mocks.BankKeeper.ExpectAny(suite.ctx)

	first := sdk.NewInt64Coin(types.TokenDenom, 1000)
	_, err := suite.msgServer.CreateGrant(suite.ctx, &types.MsgCreateGrant{
		Authority:    suite.authority,
		Account:      account,
		Amount:       first,
		ScheduleKind: types.ScheduleKind_SCHEDULE_KIND_SHORT_TERM,
	})
	suite.Require().NoError(err)

	// A second grant folds everything the first one had not yet released
	// into the fresh window.
	second := sdk.NewInt64Coin(types.TokenDenom, 500)
	_, err = suite.msgServer.CreateGrant(suite.ctx, &types.MsgCreateGrant{
		Authority:    suite.authority,
		Account:      account,
		Amount:       second,
		ScheduleKind: types.ScheduleKind_SCHEDULE_KIND_LONG_TERM,
	})
	suite.Require().NoError(err)

	grant, found := suite.keeper.GetGrant(suite.ctx, account)
	suite.Require().True(found)
	suite.Require().Equal(math.NewInt(1500), grant.TotalAmount)
	suite.Require().Equal(math.ZeroInt(), grant.ReleasedAmount)
	suite.Require().Equal(types.ScheduleKind_SCHEDULE_KIND_LONG_TERM, grant.ScheduleKind)
	suite.Require().Equal(int64(1_000_000)+int64(types.DefaultLongTermSeconds), grant.EndTime)
}

func (suite *MsgServerTestSuite) TestRelease() {
	account := sample.AccAddress()
	suite.keeper.SetGrant(suite.ctx, types.VestingGrant{
		Account:        account,
		TotalAmount:    math.NewInt(1000),
		ReleasedAmount: math.ZeroInt(),
		StartTime:      1_000_000 - 50,
		EndTime:        1_000_000 + 50,
		Active:         true,
		ScheduleKind:   types.ScheduleKind_SCHEDULE_KIND_SHORT_TERM,
	})

	accountAddr, err := sdk.AccAddressFromBech32(account)
	suite.Require().NoError(err)
	released := sdk.NewInt64Coin(types.TokenDenom, 500)

	suite.mocks.BankKeeper.EXPECT().SendCoinsFromModuleToAccount(
		gomock.Any(), types.ModuleName, accountAddr, sdk.NewCoins(released), "vesting release").Return(nil)
	suite.mocks.BankKeeper.EXPECT().LogSubAccountTransaction(
		gomock.Any(), account, types.ModuleName, keeper.EscrowSubAccount, released, gomock.Any())

	resp, err := suite.msgServer.Release(suite.ctx, &types.MsgRelease{Account: account})
	suite.Require().NoError(err)
	suite.Require().Equal(released, resp.Released)

	grant, found := suite.keeper.GetGrant(suite.ctx, account)
	suite.Require().True(found)
	suite.Require().Equal(math.NewInt(500), grant.ReleasedAmount)
}

func (suite *MsgServerTestSuite) TestRelease_NothingVested() {
	account := sample.AccAddress()
	suite.keeper.SetGrant(suite.ctx, types.VestingGrant{
		Account:        account,
		TotalAmount:    math.NewInt(1000),
		ReleasedAmount: math.ZeroInt(),
		StartTime:      1_000_000 + 100,
		EndTime:        1_000_000 + 200,
		Active:         true,
		ScheduleKind:   types.ScheduleKind_SCHEDULE_KIND_SHORT_TERM,
	})

	_, err := suite.msgServer.Release(suite.ctx, &types.MsgRelease{Account: account})
	suite.Require().ErrorIs(err, types.ErrNothingToRelease)
}

func (suite *MsgServerTestSuite) TestUpdateParams() {
	params := types.NewParams(1000, 2000)
	_, err := suite.msgServer.UpdateParams(suite.ctx, &types.MsgUpdateParams{
		Authority: suite.authority,
		Params:    params,
	})
	suite.Require().NoError(err)
	suite.Require().Equal(params, suite.keeper.GetParams(suite.ctx))
}

func (suite *MsgServerTestSuite) TestUpdateParams_WrongAuthority() {
	_, err := suite.msgServer.UpdateParams(suite.ctx, &types.MsgUpdateParams{
		Authority: sample.AccAddress(),
		Params:    types.DefaultParams(),
	})
	suite.Require().ErrorIs(err, types.ErrInvalidSigner)
}
