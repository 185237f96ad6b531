package types

import (
	"cosmossdk.io/math"
)

// VestedAmount returns the cumulative amount of the grant that has vested at
// the given time: zero before start, the full total at or after end, and a
// linearly interpolated amount in between, truncated toward zero.
func (g VestingGrant) VestedAmount(now int64) math.Int {
	if now < g.StartTime {
		return math.ZeroInt()
	}
	if now >= g.EndTime {
		return g.TotalAmount
	}

	elapsed := math.NewInt(now - g.StartTime)
	duration := math.NewInt(g.EndTime - g.StartTime)
	return g.TotalAmount.Mul(elapsed).Quo(duration)
}

// UnreleasedAmount returns the portion of the grant still held in escrow.
func (g VestingGrant) UnreleasedAmount() math.Int {
	return g.TotalAmount.Sub(g.ReleasedAmount)
}
