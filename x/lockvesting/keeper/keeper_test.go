package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	keepertest "github.com/WolfZAlpha/prosdepth/testutil/keeper"
	"github.com/WolfZAlpha/prosdepth/testutil/sample"
	"github.com/WolfZAlpha/prosdepth/x/lockvesting/keeper"
	"github.com/WolfZAlpha/prosdepth/x/lockvesting/types"
)

type KeeperTestSuite struct {
	suite.Suite
	ctx    sdk.Context
	keeper keeper.Keeper
	mocks  keepertest.LockvestingMocks
}

func (suite *KeeperTestSuite) SetupTest() {
	k, ctx, mocks := keepertest.LockvestingKeeperWithMocks(suite.T())
	suite.ctx = ctx.WithBlockTime(time.Unix(1_000_000, 0))
	suite.keeper = k
	suite.mocks = mocks
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

// grantFor stores a grant with a 100 second window starting at startTime.
func (suite *KeeperTestSuite) grantFor(account string, total int64, startTime int64) types.VestingGrant {
	grant := types.VestingGrant{
		Account:        account,
		TotalAmount:    math.NewInt(total),
		ReleasedAmount: math.ZeroInt(),
		StartTime:      startTime,
		EndTime:        startTime + 100,
		Active:         true,
		ScheduleKind:   types.ScheduleKind_SCHEDULE_KIND_SHORT_TERM,
	}
	suite.keeper.SetGrant(suite.ctx, grant)
	return grant
}

func (suite *KeeperTestSuite) TestVestedAmountLinearity() {
	account := sample.AccAddress()
	grant := suite.grantFor(account, 1000, 1_000_000)

	// Nothing before start
	suite.Require().Equal(math.ZeroInt(), grant.VestedAmount(999_999))
	// Zero exactly at start
	suite.Require().Equal(math.ZeroInt(), grant.VestedAmount(1_000_000))
	// Half way through the window half the total has vested
	suite.Require().Equal(math.NewInt(500), grant.VestedAmount(1_000_050))
	// Interpolation truncates toward zero
	suite.Require().Equal(math.NewInt(330), grant.VestedAmount(1_000_033))
	// Full total at and after the end
	suite.Require().Equal(math.NewInt(1000), grant.VestedAmount(1_000_100))
	suite.Require().Equal(math.NewInt(1000), grant.VestedAmount(2_000_000))
}

func (suite *KeeperTestSuite) TestRelease_Midpoint() {
	account := sample.AccAddress()
	suite.grantFor(account, 1000, 1_000_000)

	delta, err := suite.keeper.Release(suite.ctx, account, 1_000_050)
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(500), delta)

	grant, found := suite.keeper.GetGrant(suite.ctx, account)
	suite.Require().True(found)
	suite.Require().Equal(math.NewInt(500), grant.ReleasedAmount)
	suite.Require().True(grant.Active)
}

func (suite *KeeperTestSuite) TestRelease_TwiceAtSameTime() {
	account := sample.AccAddress()
	suite.grantFor(account, 1000, 1_000_000)

	delta, err := suite.keeper.Release(suite.ctx, account, 1_000_040)
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(400), delta)

	// A second release at the same time has nothing left to move
	_, err = suite.keeper.Release(suite.ctx, account, 1_000_040)
	suite.Require().ErrorIs(err, types.ErrNothingToRelease)

	// The remainder comes out at the end and the grant deactivates
	delta, err = suite.keeper.Release(suite.ctx, account, 1_000_100)
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(600), delta)

	grant, found := suite.keeper.GetGrant(suite.ctx, account)
	suite.Require().True(found)
	suite.Require().False(grant.Active)
	suite.Require().Equal(grant.TotalAmount, grant.ReleasedAmount)
}

func (suite *KeeperTestSuite) TestRelease_NoGrant() {
	_, err := suite.keeper.Release(suite.ctx, sample.AccAddress(), 1_000_050)
	suite.Require().ErrorIs(err, types.ErrGrantNotFound)
}

func (suite *KeeperTestSuite) TestRelease_InactiveGrant() {
	account := sample.AccAddress()
	grant := suite.grantFor(account, 1000, 1_000_000)
	grant.ReleasedAmount = grant.TotalAmount
	grant.Active = false
	suite.keeper.SetGrant(suite.ctx, grant)

	_, err := suite.keeper.Release(suite.ctx, account, 1_000_200)
	suite.Require().ErrorIs(err, types.ErrGrantNotActive)
}

func (suite *KeeperTestSuite) TestReleasableAmount() {
	account := sample.AccAddress()
	suite.grantFor(account, 1000, 1_000_000)

	suite.Require().Equal(math.NewInt(250), suite.keeper.ReleasableAmount(suite.ctx, account, 1_000_025))
	suite.Require().Equal(math.ZeroInt(), suite.keeper.ReleasableAmount(suite.ctx, sample.AccAddress(), 1_000_025))
}

func (suite *KeeperTestSuite) TestReleasableAmount_AfterRelease() {
	account := sample.AccAddress()
	suite.grantFor(account, 1000, 1_000_000)

	// Releasing consumes everything vested so far
	released, err := suite.keeper.Release(suite.ctx, account, 1_000_040)
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(400), released)
	suite.Require().Equal(math.ZeroInt().String(), suite.keeper.ReleasableAmount(suite.ctx, account, 1_000_040).String())

	// Only the vesting accrued since then is releasable
	suite.Require().Equal(math.NewInt(100), suite.keeper.ReleasableAmount(suite.ctx, account, 1_000_050))

	// A fully released grant is inactive and has nothing left
	_, err = suite.keeper.Release(suite.ctx, account, 1_000_100)
	suite.Require().NoError(err)
	suite.Require().Equal(math.ZeroInt().String(), suite.keeper.ReleasableAmount(suite.ctx, account, 1_000_100).String())
}

func (suite *KeeperTestSuite) TestCanTransfer() {
	account := sample.AccAddress()
	suite.grantFor(account, 1000, 1_000_000)

	// No grant means no restriction
	suite.Require().True(suite.keeper.CanTransfer(suite.ctx, sample.AccAddress(), math.NewInt(1_000_000), 1_000_050))

	// At the midpoint only the vested half may move
	suite.Require().True(suite.keeper.CanTransfer(suite.ctx, account, math.NewInt(500), 1_000_050))
	suite.Require().False(suite.keeper.CanTransfer(suite.ctx, account, math.NewInt(501), 1_000_050))

	// Released amounts count against the vested budget
	_, err := suite.keeper.Release(suite.ctx, account, 1_000_050)
	suite.Require().NoError(err)
	suite.Require().False(suite.keeper.CanTransfer(suite.ctx, account, math.NewInt(1), 1_000_050))

	// After the end the full grant is movable
	suite.Require().True(suite.keeper.CanTransfer(suite.ctx, account, math.NewInt(500), 1_000_100))
}

func (suite *KeeperTestSuite) TestCanTransfer_InactiveGrant() {
	account := sample.AccAddress()
	grant := suite.grantFor(account, 1000, 1_000_000)
	grant.ReleasedAmount = grant.TotalAmount
	grant.Active = false
	suite.keeper.SetGrant(suite.ctx, grant)

	suite.Require().True(suite.keeper.CanTransfer(suite.ctx, account, math.NewInt(1_000_000), 1_000_050))
}

func (suite *KeeperTestSuite) TestGetAllGrants() {
	alice := sample.AccAddress()
	bob := sample.AccAddress()
	suite.grantFor(alice, 1000, 1_000_000)
	suite.grantFor(bob, 2000, 1_000_000)

	grants := suite.keeper.GetAllGrants(suite.ctx)
	suite.Require().Len(grants, 2)

	accounts := make(map[string]bool)
	for _, grant := range grants {
		accounts[grant.Account] = true
	}
	suite.Require().True(accounts[alice])
	suite.Require().True(accounts[bob])
}
