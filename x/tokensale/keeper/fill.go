package keeper

import (
	"cosmossdk.io/math"

	"github.com/WolfZAlpha/prosdepth/x/tokensale/types"
)

// unitPriceScale converts a USD-cent tier price and a USD quote scaled by
// types.QuoteScale into payment base units per whole sale token:
//
//	cents/100 USD per token  /  quote/QuoteScale USD per payment token  *  10^6 base units
//
// which collapses to cents * 10^12 / quote.
var unitPriceScale = math.NewInt(1_000_000_000_000)

// UnitPrice returns the cost of one whole sale token in payment base units at
// the given tier price and oracle quote.
func UnitPrice(priceUsdCents uint64, quotePrice math.Int) (math.Int, error) {
	if quotePrice.IsNil() || !quotePrice.IsPositive() {
		return math.Int{}, types.ErrInvalidPrice.Wrap("oracle quote is not positive")
	}
	price := math.NewIntFromUint64(priceUsdCents).Mul(unitPriceScale).Quo(quotePrice)
	if !price.IsPositive() {
		return math.Int{}, types.ErrInvalidPrice.Wrapf("tier price %d cents at quote %s", priceUsdCents, quotePrice)
	}
	return price, nil
}

// TierFill is the portion of a fill taken from one tier.
type TierFill struct {
	TierId uint64
	Tokens math.Int
	Cost   math.Int
}

// FillResult is the outcome of walking the tier ladder for one purchase.
type FillResult struct {
	// Tokens is the number of whole sale tokens bought.
	Tokens math.Int
	// Cost is the exact amount of payment base units consumed.
	Cost math.Int
	// Fills lists the per-tier allocations in ladder order.
	Fills []TierFill
	// FinalTier is the tier the sale stands on after the fill.
	FinalTier uint64
	// SoldOut is true when the fill consumed the last token of the last tier.
	SoldOut bool
}

// ComputeFill walks the tier ladder from the current tier, buying whole
// tokens until the requested amount, the budget, or the remaining capacity
// runs out. It is a pure computation; the caller applies the resulting state.
//
// Tiers must be ordered by id and include the current tier. The budget is the
// post-tax payment in payment base units.
func ComputeFill(tiers []types.Tier, currentTier uint64, budget, requested, quotePrice math.Int) (FillResult, error) {
	result := FillResult{
		Tokens:    math.ZeroInt(),
		Cost:      math.ZeroInt(),
		FinalTier: currentTier,
	}

	remainingBudget := budget
	remainingRequest := requested

	started := false
	for i, tier := range tiers {
		if tier.Id == currentTier {
			started = true
		}
		if !started {
			continue
		}

		unitPrice, err := UnitPrice(tier.PriceUsdCents, quotePrice)
		if err != nil {
			return FillResult{}, err
		}

		available := tier.Capacity.Sub(tier.Sold)
		affordable := remainingBudget.Quo(unitPrice)

		take := remainingRequest
		if available.LT(take) {
			take = available
		}
		if affordable.LT(take) {
			take = affordable
		}

		if take.IsPositive() {
			cost := take.Mul(unitPrice)
			result.Fills = append(result.Fills, TierFill{TierId: tier.Id, Tokens: take, Cost: cost})
			result.Tokens = result.Tokens.Add(take)
			result.Cost = result.Cost.Add(cost)
			remainingBudget = remainingBudget.Sub(cost)
			remainingRequest = remainingRequest.Sub(take)
		}

		result.FinalTier = tier.Id

		if take.LT(available) {
			// Budget or request exhausted inside this tier.
			return result, nil
		}

		// Tier fully consumed. Advance, or mark the sale sold out on the last
		// rung.
		if i == len(tiers)-1 {
			result.SoldOut = true
			return result, nil
		}
		result.FinalTier = tiers[i+1].Id

		if remainingRequest.IsZero() || remainingBudget.IsZero() {
			return result, nil
		}
	}

	return result, nil
}
