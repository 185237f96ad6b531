package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{})
	for _, grant := range gs.GrantList {
		if _, err := sdk.AccAddressFromBech32(grant.Account); err != nil {
			return fmt.Errorf("invalid grant account %s: %w", grant.Account, err)
		}
		if _, dup := seen[grant.Account]; dup {
			return fmt.Errorf("duplicate grant for account %s", grant.Account)
		}
		seen[grant.Account] = struct{}{}

		if grant.TotalAmount.IsNil() || !grant.TotalAmount.IsPositive() {
			return fmt.Errorf("grant for %s has non-positive total amount", grant.Account)
		}
		if grant.ReleasedAmount.IsNil() || grant.ReleasedAmount.IsNegative() {
			return fmt.Errorf("grant for %s has negative released amount", grant.Account)
		}
		if grant.ReleasedAmount.GT(grant.TotalAmount) {
			return fmt.Errorf("grant for %s released more than total", grant.Account)
		}
		if grant.EndTime <= grant.StartTime {
			return fmt.Errorf("grant for %s has end time before start time", grant.Account)
		}
	}

	return gs.Params.Validate()
}
