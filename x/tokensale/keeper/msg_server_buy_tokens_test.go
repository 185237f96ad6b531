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
	oracletypes "github.com/WolfZAlpha/prosdepth/x/oracle/types"
	"github.com/WolfZAlpha/prosdepth/x/tokensale/keeper"
	"github.com/WolfZAlpha/prosdepth/x/tokensale/types"
)

type BuyTokensTestSuite struct {
	suite.Suite
	ctx       sdk.Context
	keeper    keeper.Keeper
	msgServer types.MsgServer
	mocks     keepertest.TokensaleMocks
	authority string

	buyer        string
	treasury     string
	taxCollector string
}

func (suite *BuyTokensTestSuite) SetupTest() {
	k, ctx, mocks := keepertest.TokensaleKeeperWithMocks(suite.T())
	suite.ctx = ctx
	suite.keeper = k
	suite.msgServer = keeper.NewMsgServerImpl(k)
	suite.mocks = mocks
	suite.authority = authtypes.NewModuleAddress(govtypes.ModuleName).String()

	suite.buyer = sample.AccAddress()
	suite.treasury = sample.AccAddress()
	suite.taxCollector = sample.AccAddress()
	suite.Require().NoError(k.SetFundAccounts(ctx, types.FundAccounts{
		Treasury:     suite.treasury,
		TaxCollector: suite.taxCollector,
	}))
}

func TestBuyTokensTestSuite(t *testing.T) {
	suite.Run(t, new(BuyTokensTestSuite))
}

func mustAddr(s string) sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(s)
	if err != nil {
		panic(err)
	}
	return addr
}

// 0.02 USD per payment token at the fixed 10^8 quote scale; tier 1 at 5 cents
// works out to 2_500_000 payment base units per token.
func (suite *BuyTokensTestSuite) expectQuote() {
	suite.mocks.OracleKeeper.EXPECT().GetLatestQuote(gomock.Any()).Return(oracletypes.PriceQuote{
		Price:     math.NewInt(2_000_000),
		UpdatedAt: 1_000_000,
	}, nil)
}

func paymentCoins(amount int64) sdk.Coins {
	return sdk.NewCoins(sdk.NewInt64Coin(types.DefaultPaymentDenom, amount))
}

func (suite *BuyTokensTestSuite) TestBuyTokens_Conservation() {
	buyerAddr := mustAddr(suite.buyer)
	treasuryAddr := mustAddr(suite.treasury)
	taxAddr := mustAddr(suite.taxCollector)

	suite.expectQuote()

	// payment 100_000_000, tax 5% = 5_000_000, budget 95_000_000;
	// 30 requested tokens cost 75_000_000, refund 20_000_000
	suite.mocks.BookKeeper.EXPECT().SendCoinsFromAccountToModule(
		gomock.Any(), buyerAddr, types.ModuleName, paymentCoins(100_000_000), "token sale payment").Return(nil)
	suite.mocks.BookKeeper.EXPECT().SendCoinsFromModuleToAccount(
		gomock.Any(), types.ModuleName, taxAddr, paymentCoins(5_000_000), "token sale tax").Return(nil)
	suite.mocks.BookKeeper.EXPECT().SendCoinsFromModuleToAccount(
		gomock.Any(), types.ModuleName, treasuryAddr, paymentCoins(75_000_000), "token sale proceeds").Return(nil)
	suite.mocks.BookKeeper.EXPECT().SendCoinsFromModuleToAccount(
		gomock.Any(), types.ModuleName, buyerAddr, paymentCoins(20_000_000), "token sale refund").Return(nil)

	minted := sdk.NewCoins(sdk.NewInt64Coin(types.TokenDenom, 30_000_000))
	suite.mocks.BankKeeper.EXPECT().GetBalance(
		gomock.Any(), buyerAddr, types.TokenDenom).Return(sdk.NewInt64Coin(types.TokenDenom, 0))
	suite.mocks.BookKeeper.EXPECT().MintCoins(
		gomock.Any(), types.ModuleName, minted, "token sale mint").Return(nil)
	suite.mocks.BookKeeper.EXPECT().SendCoinsFromModuleToAccount(
		gomock.Any(), types.ModuleName, buyerAddr, minted, "token sale delivery").Return(nil)
	suite.mocks.BankKeeper.EXPECT().GetBalance(
		gomock.Any(), buyerAddr, types.TokenDenom).Return(sdk.NewInt64Coin(types.TokenDenom, 30_000_000))

	resp, err := suite.msgServer.BuyTokens(suite.ctx, &types.MsgBuyTokens{
		Buyer:           suite.buyer,
		Payment:         sdk.NewInt64Coin(types.DefaultPaymentDenom, 100_000_000),
		RequestedAmount: math.NewInt(30),
	})
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(30), resp.TokensBought)
	suite.Require().Equal(math.NewInt(75_000_000), resp.Cost)
	suite.Require().Equal(math.NewInt(5_000_000), resp.Tax)
	suite.Require().Equal(math.NewInt(20_000_000), resp.Refund)

	// Every unit of the payment is accounted for
	total := resp.Cost.Add(resp.Tax).Add(resp.Refund)
	suite.Require().Equal(math.NewInt(100_000_000), total)

	tier, err := suite.keeper.GetTier(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(30), tier.Sold)

	buyer := suite.keeper.GetBuyer(suite.ctx, suite.buyer)
	suite.Require().Equal(math.NewInt(100_000_000), buyer.TotalPaid)

	state, err := suite.keeper.GetSaleState(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1), state.CurrentTier)
	suite.Require().True(state.Active)
}

func (suite *BuyTokensTestSuite) TestBuyTokens_TierSpilloverAdvancesSale() {
	// Shrink the ladder so one purchase crosses a tier boundary
	suite.Require().NoError(suite.keeper.SetTier(suite.ctx, types.Tier{
		Id: 1, PriceUsdCents: 5, Capacity: math.NewInt(50), Sold: math.ZeroInt()}))
	suite.Require().NoError(suite.keeper.SetTier(suite.ctx, types.Tier{
		Id: 2, PriceUsdCents: 7, Capacity: math.NewInt(100), Sold: math.ZeroInt()}))
	suite.Require().NoError(suite.keeper.SetTier(suite.ctx, types.Tier{
		Id: 3, PriceUsdCents: 10, Capacity: math.NewInt(100), Sold: math.ZeroInt()}))

	suite.expectQuote()
	suite.mocks.BookKeeper.ExpectAny(suite.ctx)
	suite.mocks.BankKeeper.EXPECT().GetBalance(gomock.Any(), gomock.Any(), types.TokenDenom).
		Return(sdk.NewInt64Coin(types.TokenDenom, 0))
	suite.mocks.BankKeeper.EXPECT().GetBalance(gomock.Any(), gomock.Any(), types.TokenDenom).
		Return(sdk.NewInt64Coin(types.TokenDenom, 100_000_000))

	// 100 tokens: 50 at 2.5 + 50 at 3.5 = 300_000_000; tax on top needs
	// payment of 320_000_000 to leave enough budget (tax 16_000_000)
	resp, err := suite.msgServer.BuyTokens(suite.ctx, &types.MsgBuyTokens{
		Buyer:           suite.buyer,
		Payment:         sdk.NewInt64Coin(types.DefaultPaymentDenom, 320_000_000),
		RequestedAmount: math.NewInt(100),
	})
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(100), resp.TokensBought)
	suite.Require().Equal(math.NewInt(300_000_000), resp.Cost)

	tier1, err := suite.keeper.GetTier(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Equal(tier1.Capacity, tier1.Sold)
	tier2, err := suite.keeper.GetTier(suite.ctx, 2)
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(50), tier2.Sold)

	state, err := suite.keeper.GetSaleState(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(2), state.CurrentTier)
	suite.Require().True(state.Active)
}

func (suite *BuyTokensTestSuite) TestBuyTokens_LastTierClosesSale() {
	suite.Require().NoError(suite.keeper.SetTier(suite.ctx, types.Tier{
		Id: 1, PriceUsdCents: 5, Capacity: math.NewInt(10), Sold: math.NewInt(10)}))
	suite.Require().NoError(suite.keeper.SetTier(suite.ctx, types.Tier{
		Id: 2, PriceUsdCents: 7, Capacity: math.NewInt(10), Sold: math.NewInt(10)}))
	suite.Require().NoError(suite.keeper.SetTier(suite.ctx, types.Tier{
		Id: 3, PriceUsdCents: 10, Capacity: math.NewInt(10), Sold: math.NewInt(5)}))
	state, err := suite.keeper.GetSaleState(suite.ctx)
	suite.Require().NoError(err)
	state.CurrentTier = 3
	suite.Require().NoError(suite.keeper.SetSaleState(suite.ctx, state))

	suite.expectQuote()
	suite.mocks.BookKeeper.ExpectAny(suite.ctx)
	suite.mocks.BankKeeper.EXPECT().GetBalance(gomock.Any(), gomock.Any(), types.TokenDenom).
		Return(sdk.NewInt64Coin(types.TokenDenom, 0))
	suite.mocks.BankKeeper.EXPECT().GetBalance(gomock.Any(), gomock.Any(), types.TokenDenom).
		Return(sdk.NewInt64Coin(types.TokenDenom, 5_000_000))

	resp, err := suite.msgServer.BuyTokens(suite.ctx, &types.MsgBuyTokens{
		Buyer:           suite.buyer,
		Payment:         sdk.NewInt64Coin(types.DefaultPaymentDenom, 100_000_000),
		RequestedAmount: math.NewInt(5),
	})
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(5), resp.TokensBought)

	state, err = suite.keeper.GetSaleState(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().False(state.Active)
}

func (suite *BuyTokensTestSuite) TestBuyTokens_SaleInactive() {
	state, err := suite.keeper.GetSaleState(suite.ctx)
	suite.Require().NoError(err)
	state.Active = false
	suite.Require().NoError(suite.keeper.SetSaleState(suite.ctx, state))

	_, err = suite.msgServer.BuyTokens(suite.ctx, &types.MsgBuyTokens{
		Buyer:           suite.buyer,
		Payment:         sdk.NewInt64Coin(types.DefaultPaymentDenom, 100_000_000),
		RequestedAmount: math.NewInt(30),
	})
	suite.Require().ErrorIs(err, types.ErrSaleInactive)
}

func (suite *BuyTokensTestSuite) TestBuyTokens_SalePaused() {
	state, err := suite.keeper.GetSaleState(suite.ctx)
	suite.Require().NoError(err)
	state.Paused = true
	suite.Require().NoError(suite.keeper.SetSaleState(suite.ctx, state))

	_, err = suite.msgServer.BuyTokens(suite.ctx, &types.MsgBuyTokens{
		Buyer:           suite.buyer,
		Payment:         sdk.NewInt64Coin(types.DefaultPaymentDenom, 100_000_000),
		RequestedAmount: math.NewInt(30),
	})
	suite.Require().ErrorIs(err, types.ErrSalePaused)
}

func (suite *BuyTokensTestSuite) TestBuyTokens_WrongDenom() {
	_, err := suite.msgServer.BuyTokens(suite.ctx, &types.MsgBuyTokens{
		Buyer:           suite.buyer,
		Payment:         sdk.NewInt64Coin("uother", 100_000_000),
		RequestedAmount: math.NewInt(30),
	})
	suite.Require().ErrorIs(err, types.ErrInvalidPaymentDenom)
}

func (suite *BuyTokensTestSuite) TestBuyTokens_BelowMinimum() {
	_, err := suite.msgServer.BuyTokens(suite.ctx, &types.MsgBuyTokens{
		Buyer:           suite.buyer,
		Payment:         sdk.NewInt64Coin(types.DefaultPaymentDenom, 999_999),
		RequestedAmount: math.NewInt(30),
	})
	suite.Require().ErrorIs(err, types.ErrBelowMinimumBuy)
}

func (suite *BuyTokensTestSuite) TestBuyTokens_AboveCumulativeMaximum() {
	suite.Require().NoError(suite.keeper.SetBuyer(suite.ctx, types.BuyerRecord{
		Address:   suite.buyer,
		TotalPaid: math.NewInt(1_000_000_000_000),
	}))

	_, err := suite.msgServer.BuyTokens(suite.ctx, &types.MsgBuyTokens{
		Buyer:           suite.buyer,
		Payment:         sdk.NewInt64Coin(types.DefaultPaymentDenom, 1_000_000),
		RequestedAmount: math.NewInt(30),
	})
	suite.Require().ErrorIs(err, types.ErrAboveMaximumBuy)
}

func (suite *BuyTokensTestSuite) TestBuyTokens_FundAccountsNotSet() {
	k, ctx, _ := keepertest.TokensaleKeeperWithMocks(suite.T())
	msgServer := keeper.NewMsgServerImpl(k)

	_, err := msgServer.BuyTokens(ctx, &types.MsgBuyTokens{
		Buyer:           suite.buyer,
		Payment:         sdk.NewInt64Coin(types.DefaultPaymentDenom, 100_000_000),
		RequestedAmount: math.NewInt(30),
	})
	suite.Require().ErrorIs(err, types.ErrAccountsNotSet)
}

func (suite *BuyTokensTestSuite) TestBuyTokens_BudgetBuysNothing() {
	suite.expectQuote()

	// The minimum payment, after tax, is below the tier 1 unit price
	_, err := suite.msgServer.BuyTokens(suite.ctx, &types.MsgBuyTokens{
		Buyer:           suite.buyer,
		Payment:         sdk.NewInt64Coin(types.DefaultPaymentDenom, 1_000_000),
		RequestedAmount: math.NewInt(30),
	})
	suite.Require().ErrorIs(err, types.ErrInsufficientPayment)
}

func (suite *BuyTokensTestSuite) TestBuyTokens_BalanceMismatch() {
	suite.expectQuote()
	suite.mocks.BookKeeper.ExpectAny(suite.ctx)

	// The buyer's balance does not move by the minted amount
	suite.mocks.BankKeeper.EXPECT().GetBalance(gomock.Any(), gomock.Any(), types.TokenDenom).
		Return(sdk.NewInt64Coin(types.TokenDenom, 0)).Times(2)

	_, err := suite.msgServer.BuyTokens(suite.ctx, &types.MsgBuyTokens{
		Buyer:           suite.buyer,
		Payment:         sdk.NewInt64Coin(types.DefaultPaymentDenom, 100_000_000),
		RequestedAmount: math.NewInt(30),
	})
	suite.Require().ErrorIs(err, types.ErrBalanceMismatch)
}

func (suite *BuyTokensTestSuite) TestBuyTokens_BalanceWithinTolerance() {
	suite.expectQuote()
	suite.mocks.BookKeeper.ExpectAny(suite.ctx)

	// A one-base-unit shortfall against the 30_000_000 minted is tolerated
	suite.mocks.BankKeeper.EXPECT().GetBalance(gomock.Any(), gomock.Any(), types.TokenDenom).
		Return(sdk.NewInt64Coin(types.TokenDenom, 0))
	suite.mocks.BankKeeper.EXPECT().GetBalance(gomock.Any(), gomock.Any(), types.TokenDenom).
		Return(sdk.NewInt64Coin(types.TokenDenom, 29_999_999))

	resp, err := suite.msgServer.BuyTokens(suite.ctx, &types.MsgBuyTokens{
		Buyer:           suite.buyer,
		Payment:         sdk.NewInt64Coin(types.DefaultPaymentDenom, 100_000_000),
		RequestedAmount: math.NewInt(30),
	})
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(30), resp.TokensBought)
}

func (suite *BuyTokensTestSuite) TestBuyTokens_BalanceOffByTwo() {
	suite.expectQuote()
	suite.mocks.BookKeeper.ExpectAny(suite.ctx)

	// Two base units past the minted amount is outside the tolerance
	suite.mocks.BankKeeper.EXPECT().GetBalance(gomock.Any(), gomock.Any(), types.TokenDenom).
		Return(sdk.NewInt64Coin(types.TokenDenom, 0))
	suite.mocks.BankKeeper.EXPECT().GetBalance(gomock.Any(), gomock.Any(), types.TokenDenom).
		Return(sdk.NewInt64Coin(types.TokenDenom, 30_000_002))

	_, err := suite.msgServer.BuyTokens(suite.ctx, &types.MsgBuyTokens{
		Buyer:           suite.buyer,
		Payment:         sdk.NewInt64Coin(types.DefaultPaymentDenom, 100_000_000),
		RequestedAmount: math.NewInt(30),
	})
	suite.Require().ErrorIs(err, types.ErrBalanceMismatch)
}
