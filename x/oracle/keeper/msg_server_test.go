package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/suite"

	keepertest "github.com/WolfZAlpha/prosdepth/testutil/keeper"
	"github.com/WolfZAlpha/prosdepth/testutil/sample"
	"github.com/WolfZAlpha/prosdepth/x/oracle/keeper"
	"github.com/WolfZAlpha/prosdepth/x/oracle/types"
)

type MsgServerTestSuite struct {
	suite.Suite
	ctx       sdk.Context
	keeper    keeper.Keeper
	msgServer types.MsgServer
	authority string
}

func (suite *MsgServerTestSuite) SetupTest() {
	k, ctx := keepertest.OracleKeeper(suite.T())
	suite.ctx = ctx
	suite.keeper = k
	suite.msgServer = keeper.NewMsgServerImpl(k)
	suite.authority = authtypes.NewModuleAddress(govtypes.ModuleName).String()
}

func TestMsgServerTestSuite(t *testing.T) {
	suite.Run(t, new(MsgServerTestSuite))
}

func (suite *MsgServerTestSuite) TestSubmitPrice() {
	// 0.02 USD per payment token at the fixed 10^8 quote scale
	_, err := suite.msgServer.SubmitPrice(suite.ctx, &types.MsgSubmitPrice{
		Authority: suite.authority,
		Price:     math.NewInt(2_000_000),
		Timestamp: 1_000_000,
	})
	suite.Require().NoError(err)

	quote, err := suite.keeper.GetLatestQuote(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(2_000_000), quote.Price)
	suite.Require().Equal(int64(1_000_000), quote.UpdatedAt)
}

func (suite *MsgServerTestSuite) TestSubmitPrice_ReplacesQuote() {
	_, err := suite.msgServer.SubmitPrice(suite.ctx, &types.MsgSubmitPrice{
		Authority: suite.authority,
		Price:     math.NewInt(2_000_000),
		Timestamp: 1_000_000,
	})
	suite.Require().NoError(err)

	// Same timestamp is allowed, older is not
	_, err = suite.msgServer.SubmitPrice(suite.ctx, &types.MsgSubmitPrice{
		Authority: suite.authority,
		Price:     math.NewInt(3_000_000),
		Timestamp: 1_000_000,
	})
	suite.Require().NoError(err)

	_, err = suite.msgServer.SubmitPrice(suite.ctx, &types.MsgSubmitPrice{
		Authority: suite.authority,
		Price:     math.NewInt(4_000_000),
		Timestamp: 999_999,
	})
	suite.Require().ErrorIs(err, types.ErrStaleTimestamp)

	quote, err := suite.keeper.GetLatestQuote(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(3_000_000), quote.Price)
}

func (suite *MsgServerTestSuite) TestSubmitPrice_WrongAuthority() {
	_, err := suite.msgServer.SubmitPrice(suite.ctx, &types.MsgSubmitPrice{
		Authority: sample.AccAddress(),
		Price:     math.NewInt(2_000_000),
		Timestamp: 1_000_000,
	})
	suite.Require().ErrorIs(err, types.ErrInvalidSigner)
}

func (suite *MsgServerTestSuite) TestSubmitPrice_NonPositivePrice() {
	_, err := suite.msgServer.SubmitPrice(suite.ctx, &types.MsgSubmitPrice{
		Authority: suite.authority,
		Price:     math.ZeroInt(),
		Timestamp: 1_000_000,
	})
	suite.Require().ErrorIs(err, types.ErrInvalidPrice)
}

func (suite *MsgServerTestSuite) TestGetLatestQuote_Empty() {
	_, err := suite.keeper.GetLatestQuote(suite.ctx)
	suite.Require().ErrorIs(err, types.ErrNoQuote)
	suite.Require().False(suite.keeper.HasQuote(suite.ctx))
}

func (suite *MsgServerTestSuite) TestLatestQuoteQuery() {
	_, err := suite.keeper.LatestQuote(suite.ctx, &types.QueryLatestQuoteRequest{})
	suite.Require().Error(err)

	suite.Require().NoError(suite.keeper.SetQuote(suite.ctx, types.PriceQuote{
		Price:     math.NewInt(2_000_000),
		UpdatedAt: 1_000_000,
	}))

	resp, err := suite.keeper.LatestQuote(suite.ctx, &types.QueryLatestQuoteRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(2_000_000), resp.Quote.Price)
}
