package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	keepertest "github.com/WolfZAlpha/prosdepth/testutil/keeper"
	"github.com/WolfZAlpha/prosdepth/testutil/sample"
	"github.com/WolfZAlpha/prosdepth/x/tokensale/keeper"
	"github.com/WolfZAlpha/prosdepth/x/tokensale/types"
)

type MsgServerTestSuite struct {
	suite.Suite
	ctx       sdk.Context
	keeper    keeper.Keeper
	msgServer types.MsgServer
	mocks     keepertest.TokensaleMocks
	authority string
}

func (suite *MsgServerTestSuite) SetupTest() {
	k, ctx, mocks := keepertest.TokensaleKeeperWithMocks(suite.T())
	suite.ctx = ctx
	suite.keeper = k
	suite.msgServer = keeper.NewMsgServerImpl(k)
	suite.mocks = mocks
	suite.authority = authtypes.NewModuleAddress(govtypes.ModuleName).String()
}

func TestMsgServerTestSuite(t *testing.T) {
	suite.Run(t, new(MsgServerTestSuite))
}

func (suite *MsgServerTestSuite) markSoldOut() {
	for _, tier := range suite.keeper.GetAllTiers(suite.ctx) {
		tier.Sold = tier.Capacity
		suite.Require().NoError(suite.keeper.SetTier(suite.ctx, tier))
	}
}

func (suite *MsgServerTestSuite) TestSetFundAccounts() {
	treasury := sample.AccAddress()
	taxCollector := sample.AccAddress()

	_, err := suite.msgServer.SetFundAccounts(suite.ctx, &types.MsgSetFundAccounts{
		Authority:    suite.authority,
		Treasury:     treasury,
		TaxCollector: taxCollector,
	})
	suite.Require().NoError(err)

	accounts, found := suite.keeper.GetFundAccounts(suite.ctx)
	suite.Require().True(found)
	suite.Require().Equal(treasury, accounts.Treasury)
	suite.Require().Equal(taxCollector, accounts.TaxCollector)

	// Set-once: a second set fails, only update may change them
	_, err = suite.msgServer.SetFundAccounts(suite.ctx, &types.MsgSetFundAccounts{
		Authority:    suite.authority,
		Treasury:     sample.AccAddress(),
		TaxCollector: sample.AccAddress(),
	})
	suite.Require().ErrorIs(err, types.ErrAccountsAlreadySet)
}

func (suite *MsgServerTestSuite) TestSetFundAccounts_WrongAuthority() {
	_, err := suite.msgServer.SetFundAccounts(suite.ctx, &types.MsgSetFundAccounts{
		Authority:    sample.AccAddress(),
		Treasury:     sample.AccAddress(),
		TaxCollector: sample.AccAddress(),
	})
	suite.Require().ErrorIs(err, types.ErrInvalidSigner)
}

func (suite *MsgServerTestSuite) TestUpdateFundAccounts() {
	_, err := suite.msgServer.UpdateFundAccounts(suite.ctx, &types.MsgUpdateFundAccounts{
		Authority:    suite.authority,
		Treasury:     sample.AccAddress(),
		TaxCollector: sample.AccAddress(),
	})
	suite.Require().ErrorIs(err, types.ErrAccountsNotSet)

	treasury := sample.AccAddress()
	taxCollector := sample.AccAddress()
	_, err = suite.msgServer.SetFundAccounts(suite.ctx, &types.MsgSetFundAccounts{
		Authority:    suite.authority,
		Treasury:     treasury,
		TaxCollector: taxCollector,
	})
	suite.Require().NoError(err)

	// Re-submitting the same pair is rejected
	_, err = suite.msgServer.UpdateFundAccounts(suite.ctx, &types.MsgUpdateFundAccounts{
		Authority:    suite.authority,
		Treasury:     treasury,
		TaxCollector: taxCollector,
	})
	suite.Require().ErrorIs(err, types.ErrDuplicateAccount)

	newTreasury := sample.AccAddress()
	_, err = suite.msgServer.UpdateFundAccounts(suite.ctx, &types.MsgUpdateFundAccounts{
		Authority:    suite.authority,
		Treasury:     newTreasury,
		TaxCollector: taxCollector,
	})
	suite.Require().NoError(err)

	accounts, found := suite.keeper.GetFundAccounts(suite.ctx)
	suite.Require().True(found)
	suite.Require().Equal(newTreasury, accounts.Treasury)
}

func (suite *MsgServerTestSuite) TestPauseAndResumeSale() {
	_, err := suite.msgServer.PauseSale(suite.ctx, &types.MsgPauseSale{Authority: suite.authority})
	suite.Require().NoError(err)

	state, err := suite.keeper.GetSaleState(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().True(state.Paused)

	// Pausing twice fails
	_, err = suite.msgServer.PauseSale(suite.ctx, &types.MsgPauseSale{Authority: suite.authority})
	suite.Require().ErrorIs(err, types.ErrSalePaused)

	_, err = suite.msgServer.ResumeSale(suite.ctx, &types.MsgResumeSale{Authority: suite.authority})
	suite.Require().NoError(err)

	state, err = suite.keeper.GetSaleState(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().False(state.Paused)

	// Resuming an unpaused sale fails
	_, err = suite.msgServer.ResumeSale(suite.ctx, &types.MsgResumeSale{Authority: suite.authority})
	suite.Require().ErrorIs(err, types.ErrSaleNotPaused)
}

func (suite *MsgServerTestSuite) TestPauseSale_Ended() {
	state, err := suite.keeper.GetSaleState(suite.ctx)
	suite.Require().NoError(err)
	state.Active = false
	suite.Require().NoError(suite.keeper.SetSaleState(suite.ctx, state))

	_, err = suite.msgServer.PauseSale(suite.ctx, &types.MsgPauseSale{Authority: suite.authority})
	suite.Require().ErrorIs(err, types.ErrSaleEnded)

	_, err = suite.msgServer.ResumeSale(suite.ctx, &types.MsgResumeSale{Authority: suite.authority})
	suite.Require().ErrorIs(err, types.ErrSaleEnded)
}

func (suite *MsgServerTestSuite) TestEndSale() {
	// Capacity left means the sale cannot be ended
	_, err := suite.msgServer.EndSale(suite.ctx, &types.MsgEndSale{Authority: suite.authority})
	suite.Require().ErrorIs(err, types.ErrSaleNotSoldOut)

	suite.markSoldOut()
	_, err = suite.msgServer.EndSale(suite.ctx, &types.MsgEndSale{Authority: suite.authority})
	suite.Require().NoError(err)

	state, err := suite.keeper.GetSaleState(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().False(state.Active)

	// Ending twice fails
	_, err = suite.msgServer.EndSale(suite.ctx, &types.MsgEndSale{Authority: suite.authority})
	suite.Require().ErrorIs(err, types.ErrSaleEnded)
}

func (suite *MsgServerTestSuite) TestWithdrawResidual() {
	treasury := sample.AccAddress()
	treasuryAddr := mustAddr(treasury)
	suite.Require().NoError(suite.keeper.SetFundAccounts(suite.ctx, types.FundAccounts{
		Treasury:     treasury,
		TaxCollector: sample.AccAddress(),
	}))

	// The sale must be over before anything can be swept
	_, err := suite.msgServer.WithdrawResidual(suite.ctx, &types.MsgWithdrawResidual{
		Authority: suite.authority,
		Denom:     types.DefaultPaymentDenom,
	})
	suite.Require().ErrorIs(err, types.ErrSaleNotSoldOut)

	suite.markSoldOut()
	_, err = suite.msgServer.EndSale(suite.ctx, &types.MsgEndSale{Authority: suite.authority})
	suite.Require().NoError(err)

	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
	residual := sdk.NewInt64Coin(types.DefaultPaymentDenom, 42_000)
	suite.mocks.AccountKeeper.EXPECT().GetModuleAddress(types.ModuleName).Return(moduleAddr)
	suite.mocks.BankKeeper.EXPECT().GetBalance(gomock.Any(), moduleAddr, types.DefaultPaymentDenom).Return(residual)
	suite.mocks.BookKeeper.EXPECT().SendCoinsFromModuleToAccount(
		gomock.Any(), types.ModuleName, treasuryAddr, sdk.NewCoins(residual), "token sale residual sweep").Return(nil)

	resp, err := suite.msgServer.WithdrawResidual(suite.ctx, &types.MsgWithdrawResidual{
		Authority: suite.authority,
		Denom:     types.DefaultPaymentDenom,
	})
	suite.Require().NoError(err)
	suite.Require().Equal(residual, resp.Amount)
}

func (suite *MsgServerTestSuite) TestWithdrawResidual_EmptyBalance() {
	suite.Require().NoError(suite.keeper.SetFundAccounts(suite.ctx, types.FundAccounts{
		Treasury:     sample.AccAddress(),
		TaxCollector: sample.AccAddress(),
	}))
	suite.markSoldOut()
	_, err := suite.msgServer.EndSale(suite.ctx, &types.MsgEndSale{Authority: suite.authority})
	suite.Require().NoError(err)

	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
	suite.mocks.AccountKeeper.EXPECT().GetModuleAddress(types.ModuleName).Return(moduleAddr)
	suite.mocks.BankKeeper.EXPECT().GetBalance(gomock.Any(), moduleAddr, types.DefaultPaymentDenom).
		Return(sdk.NewInt64Coin(types.DefaultPaymentDenom, 0))

	// Nothing to sweep; no bank send happens
	resp, err := suite.msgServer.WithdrawResidual(suite.ctx, &types.MsgWithdrawResidual{
		Authority: suite.authority,
		Denom:     types.DefaultPaymentDenom,
	})
	suite.Require().NoError(err)
	suite.Require().True(resp.Amount.IsZero())
}

func (suite *MsgServerTestSuite) TestUpdateParams() {
	params := types.NewParams(100, math.NewInt(2_000_000), math.NewInt(2_000_000_000), "uatom")
	_, err := suite.msgServer.UpdateParams(suite.ctx, &types.MsgUpdateParams{
		Authority: suite.authority,
		Params:    params,
	})
	suite.Require().NoError(err)

	got, err := suite.keeper.GetParams(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(params, got)
}

func (suite *MsgServerTestSuite) TestUpdateParams_WrongAuthority() {
	_, err := suite.msgServer.UpdateParams(suite.ctx, &types.MsgUpdateParams{
		Authority: sample.AccAddress(),
		Params:    types.DefaultParams(),
	})
	suite.Require().ErrorIs(err, types.ErrInvalidSigner)
}
