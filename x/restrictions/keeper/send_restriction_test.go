package keeper_test

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/suite"

	keepertest "github.com/WolfZAlpha/prosdepth/testutil/keeper"
	"github.com/WolfZAlpha/prosdepth/testutil/sample"
	"github.com/WolfZAlpha/prosdepth/x/restrictions/keeper"
	"github.com/WolfZAlpha/prosdepth/x/restrictions/types"
)

type SendRestrictionTestSuite struct {
	suite.Suite
	ctx     sdk.Context
	keeper  keeper.Keeper
	vesting *keepertest.StubVestingKeeper
}

func (suite *SendRestrictionTestSuite) SetupTest() {
	k, ctx, vesting := keepertest.RestrictionsKeeperWithVesting(suite.T())
	suite.ctx = ctx.WithBlockTime(time.Unix(1_000_000, 0))
	suite.keeper = k
	suite.vesting = vesting
}

func TestSendRestrictionTestSuite(t *testing.T) {
	suite.Run(t, new(SendRestrictionTestSuite))
}

func mustAddr(s string) sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(s)
	if err != nil {
		panic(err)
	}
	return addr
}

func gatedCoins(amount int64) sdk.Coins {
	return sdk.NewCoins(sdk.NewInt64Coin(types.DefaultGatedDenom, amount))
}

func (suite *SendRestrictionTestSuite) TestAllowsUnrestrictedTransfer() {
	from := mustAddr(sample.AccAddress())
	to := mustAddr(sample.AccAddress())

	newTo, err := suite.keeper.SendRestrictionFn(suite.ctx, from, to, gatedCoins(100))
	suite.Require().NoError(err)
	suite.Require().Equal(to, newTo)
}

func (suite *SendRestrictionTestSuite) TestBlocksBlacklistedSender() {
	from := mustAddr(sample.AccAddress())
	to := mustAddr(sample.AccAddress())
	suite.Require().NoError(suite.keeper.SetBlacklisted(suite.ctx, from))

	_, err := suite.keeper.SendRestrictionFn(suite.ctx, from, to, gatedCoins(100))
	suite.Require().ErrorIs(err, types.ErrAccountBlacklisted)
}

func (suite *SendRestrictionTestSuite) TestBlocksBlacklistedRecipient() {
	from := mustAddr(sample.AccAddress())
	to := mustAddr(sample.AccAddress())
	suite.Require().NoError(suite.keeper.SetBlacklisted(suite.ctx, to))

	_, err := suite.keeper.SendRestrictionFn(suite.ctx, from, to, gatedCoins(100))
	suite.Require().ErrorIs(err, types.ErrAccountBlacklisted)
}

func (suite *SendRestrictionTestSuite) TestModuleAccountsAreExempt() {
	moduleAddr := authtypes.NewModuleAddress("tokensale")
	blacklisted := mustAddr(sample.AccAddress())
	suite.Require().NoError(suite.keeper.SetBlacklisted(suite.ctx, blacklisted))

	// Module on either side bypasses the blacklist and the vesting gate
	suite.vesting.CanTransferFn = func(ctx context.Context, account string, amount math.Int, now int64) bool {
		return false
	}

	_, err := suite.keeper.SendRestrictionFn(suite.ctx, moduleAddr, blacklisted, gatedCoins(100))
	suite.Require().NoError(err)

	_, err = suite.keeper.SendRestrictionFn(suite.ctx, blacklisted, moduleAddr, gatedCoins(100))
	suite.Require().NoError(err)
}

func (suite *SendRestrictionTestSuite) TestBlocksVestingLockedAmount() {
	from := mustAddr(sample.AccAddress())
	to := mustAddr(sample.AccAddress())

	suite.vesting.CanTransferFn = func(ctx context.Context, account string, amount math.Int, now int64) bool {
		suite.Require().Equal(from.String(), account)
		suite.Require().Equal(int64(1_000_000), now)
		return amount.LTE(math.NewInt(500))
	}

	_, err := suite.keeper.SendRestrictionFn(suite.ctx, from, to, gatedCoins(500))
	suite.Require().NoError(err)

	_, err = suite.keeper.SendRestrictionFn(suite.ctx, from, to, gatedCoins(501))
	suite.Require().ErrorIs(err, types.ErrVestingLocked)
}

func (suite *SendRestrictionTestSuite) TestIgnoresOtherDenoms() {
	from := mustAddr(sample.AccAddress())
	to := mustAddr(sample.AccAddress())

	// The vesting gate only sees the gated denom
	suite.vesting.CanTransferFn = func(ctx context.Context, account string, amount math.Int, now int64) bool {
		return false
	}

	other := sdk.NewCoins(sdk.NewInt64Coin("ustake", 1_000_000))
	_, err := suite.keeper.SendRestrictionFn(suite.ctx, from, to, other)
	suite.Require().NoError(err)
}

func (suite *SendRestrictionTestSuite) TestTransferEligibilityQuery() {
	from := sample.AccAddress()
	to := sample.AccAddress()

	resp, err := suite.keeper.TransferEligibility(suite.ctx, &types.QueryTransferEligibilityRequest{
		FromAddress: from,
		ToAddress:   to,
		Amount:      sdk.NewInt64Coin(types.DefaultGatedDenom, 100),
	})
	suite.Require().NoError(err)
	suite.Require().True(resp.Allowed)
	suite.Require().Empty(resp.Reason)

	suite.Require().NoError(suite.keeper.SetBlacklisted(suite.ctx, mustAddr(from)))

	resp, err = suite.keeper.TransferEligibility(suite.ctx, &types.QueryTransferEligibilityRequest{
		FromAddress: from,
		ToAddress:   to,
		Amount:      sdk.NewInt64Coin(types.DefaultGatedDenom, 100),
	})
	suite.Require().NoError(err)
	suite.Require().False(resp.Allowed)
	suite.Require().Contains(resp.Reason, "blacklisted")
}
