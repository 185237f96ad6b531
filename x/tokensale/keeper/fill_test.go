package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/WolfZAlpha/prosdepth/x/tokensale/keeper"
	"github.com/WolfZAlpha/prosdepth/x/tokensale/types"
)

// quote of 0.02 USD per payment token at the fixed 10^8 scale
var testQuote = math.NewInt(2_000_000)

func tier(id uint64, priceUsdCents uint64, capacity, sold int64) types.Tier {
	return types.Tier{
		Id:            id,
		PriceUsdCents: priceUsdCents,
		Capacity:      math.NewInt(capacity),
		Sold:          math.NewInt(sold),
	}
}

func TestUnitPrice(t *testing.T) {
	// 5 cents per token at 0.02 USD per payment token is 2.5 payment tokens,
	// or 2_500_000 base units.
	price, err := keeper.UnitPrice(5, testQuote)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2_500_000), price)

	price, err = keeper.UnitPrice(10, testQuote)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(5_000_000), price)
}

func TestUnitPrice_InvalidQuote(t *testing.T) {
	_, err := keeper.UnitPrice(5, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidPrice)

	_, err = keeper.UnitPrice(5, math.NewInt(-1))
	require.ErrorIs(t, err, types.ErrInvalidPrice)

	// A quote so high the unit price truncates to zero is rejected rather
	// than letting tokens go for free.
	_, err = keeper.UnitPrice(1, math.NewInt(2_000_000_000_000))
	require.ErrorIs(t, err, types.ErrInvalidPrice)
}

func TestComputeFill_SingleTier(t *testing.T) {
	tiers := []types.Tier{tier(1, 5, 1000, 0), tier(2, 7, 1000, 0)}

	fill, err := keeper.ComputeFill(tiers, 1, math.NewInt(25_000_000), math.NewInt(10), testQuote)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10), fill.Tokens)
	require.Equal(t, math.NewInt(25_000_000), fill.Cost)
	require.Equal(t, uint64(1), fill.FinalTier)
	require.False(t, fill.SoldOut)
	require.Len(t, fill.Fills, 1)
}

func TestComputeFill_BudgetLimited(t *testing.T) {
	tiers := []types.Tier{tier(1, 5, 1000, 0)}

	// 10_000_000 base units buy exactly 4 tokens at 2_500_000 each
	fill, err := keeper.ComputeFill(tiers, 1, math.NewInt(10_000_000), math.NewInt(100), testQuote)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(4), fill.Tokens)
	require.Equal(t, math.NewInt(10_000_000), fill.Cost)

	// A budget that is not a whole multiple leaves the remainder unspent
	fill, err = keeper.ComputeFill(tiers, 1, math.NewInt(10_999_999), math.NewInt(100), testQuote)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(4), fill.Tokens)
	require.Equal(t, math.NewInt(10_000_000), fill.Cost)
}

func TestComputeFill_TierSpillover(t *testing.T) {
	tiers := []types.Tier{tier(1, 5, 50, 0), tier(2, 7, 100, 0), tier(3, 10, 100, 0)}

	// 100 tokens: 50 out of tier 1 at 2.5, 50 out of tier 2 at 3.5
	budget := math.NewInt(50*2_500_000 + 50*3_500_000)
	fill, err := keeper.ComputeFill(tiers, 1, budget, math.NewInt(100), testQuote)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), fill.Tokens)
	require.Equal(t, budget, fill.Cost)
	require.Equal(t, uint64(2), fill.FinalTier)
	require.False(t, fill.SoldOut)

	require.Len(t, fill.Fills, 2)
	require.Equal(t, uint64(1), fill.Fills[0].TierId)
	require.Equal(t, math.NewInt(50), fill.Fills[0].Tokens)
	require.Equal(t, math.NewInt(125_000_000), fill.Fills[0].Cost)
	require.Equal(t, uint64(2), fill.Fills[1].TierId)
	require.Equal(t, math.NewInt(50), fill.Fills[1].Tokens)
	require.Equal(t, math.NewInt(175_000_000), fill.Fills[1].Cost)

	// Later tiers are never cheaper per token
	require.True(t, fill.Fills[1].Cost.Quo(fill.Fills[1].Tokens).GTE(fill.Fills[0].Cost.Quo(fill.Fills[0].Tokens)))
}

func TestComputeFill_ExactTierBoundary(t *testing.T) {
	tiers := []types.Tier{tier(1, 5, 50, 0), tier(2, 7, 100, 0)}

	// Taking exactly the remaining tier 1 capacity advances the ladder
	fill, err := keeper.ComputeFill(tiers, 1, math.NewInt(125_000_000), math.NewInt(50), testQuote)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50), fill.Tokens)
	require.Equal(t, uint64(2), fill.FinalTier)
	require.False(t, fill.SoldOut)
}

func TestComputeFill_SoldOut(t *testing.T) {
	tiers := []types.Tier{tier(1, 5, 50, 50), tier(2, 7, 100, 90)}

	fill, err := keeper.ComputeFill(tiers, 2, math.NewInt(1_000_000_000), math.NewInt(10), testQuote)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10), fill.Tokens)
	require.True(t, fill.SoldOut)
	require.Equal(t, uint64(2), fill.FinalTier)
}

func TestComputeFill_StartsAtCurrentTier(t *testing.T) {
	tiers := []types.Tier{tier(1, 5, 50, 0), tier(2, 7, 100, 0)}

	// Tier 1 still has capacity but the sale has moved past it
	fill, err := keeper.ComputeFill(tiers, 2, math.NewInt(35_000_000), math.NewInt(10), testQuote)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10), fill.Tokens)
	require.Len(t, fill.Fills, 1)
	require.Equal(t, uint64(2), fill.Fills[0].TierId)
}

func TestComputeFill_NothingAffordable(t *testing.T) {
	tiers := []types.Tier{tier(1, 5, 50, 0)}

	fill, err := keeper.ComputeFill(tiers, 1, math.NewInt(2_499_999), math.NewInt(10), testQuote)
	require.NoError(t, err)
	require.True(t, fill.Tokens.IsZero())
	require.True(t, fill.Cost.IsZero())
	require.Empty(t, fill.Fills)
}

func TestComputeFill_PartiallySoldTier(t *testing.T) {
	tiers := []types.Tier{tier(1, 5, 50, 45)}

	// Only the unsold remainder of the tier is for sale
	fill, err := keeper.ComputeFill(tiers, 1, math.NewInt(1_000_000_000), math.NewInt(10), testQuote)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(5), fill.Tokens)
	require.True(t, fill.SoldOut)
}
