package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/suite"

	keepertest "github.com/WolfZAlpha/prosdepth/testutil/keeper"
	"github.com/WolfZAlpha/prosdepth/testutil/sample"
	"github.com/WolfZAlpha/prosdepth/x/restrictions/keeper"
	"github.com/WolfZAlpha/prosdepth/x/restrictions/types"
)

type MsgServerTestSuite struct {
	suite.Suite
	ctx       sdk.Context
	keeper    keeper.Keeper
	msgServer types.MsgServer
	authority string
}

func (suite *MsgServerTestSuite) SetupTest() {
	k, ctx := keepertest.RestrictionsKeeper(suite.T())
	suite.ctx = ctx
	suite.keeper = k
	suite.msgServer = keeper.NewMsgServerImpl(k)
	suite.authority = authtypes.NewModuleAddress(govtypes.ModuleName).String()
}

func TestMsgServerTestSuite(t *testing.T) {
	suite.Run(t, new(MsgServerTestSuite))
}

func (suite *MsgServerTestSuite) TestBlacklistAccount() {
	account := sample.AccAddress()

	_, err := suite.msgServer.BlacklistAccount(suite.ctx, &types.MsgBlacklistAccount{
		Authority: suite.authority,
		Account:   account,
	})
	suite.Require().NoError(err)
	suite.Require().True(suite.keeper.IsBlacklisted(suite.ctx, mustAddr(account)))

	// Blacklisting twice fails loudly
	_, err = suite.msgServer.BlacklistAccount(suite.ctx, &types.MsgBlacklistAccount{
		Authority: suite.authority,
		Account:   account,
	})
	suite.Require().ErrorIs(err, types.ErrAlreadyBlacklisted)
}

func (suite *MsgServerTestSuite) TestBlacklistAccount_WrongAuthority() {
	_, err := suite.msgServer.BlacklistAccount(suite.ctx, &types.MsgBlacklistAccount{
		Authority: sample.AccAddress(),
		Account:   sample.AccAddress(),
	})
	suite.Require().ErrorIs(err, types.ErrInvalidSigner)
}

func (suite *MsgServerTestSuite) TestUnblacklistAccount() {
	account := sample.AccAddress()

	_, err := suite.msgServer.BlacklistAccount(suite.ctx, &types.MsgBlacklistAccount{
		Authority: suite.authority,
		Account:   account,
	})
	suite.Require().NoError(err)

	_, err = suite.msgServer.UnblacklistAccount(suite.ctx, &types.MsgUnblacklistAccount{
		Authority: suite.authority,
		Account:   account,
	})
	suite.Require().NoError(err)
	suite.Require().False(suite.keeper.IsBlacklisted(suite.ctx, mustAddr(account)))
}

func (suite *MsgServerTestSuite) TestUnblacklistAccount_NotListed() {
	_, err := suite.msgServer.UnblacklistAccount(suite.ctx, &types.MsgUnblacklistAccount{
		Authority: suite.authority,
		Account:   sample.AccAddress(),
	})
	suite.Require().ErrorIs(err, types.ErrNotBlacklisted)
}
