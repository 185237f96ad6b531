package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:              DefaultParams(),
		BlacklistedAccounts: []string{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{})
	for _, account := range gs.BlacklistedAccounts {
		if _, err := sdk.AccAddressFromBech32(account); err != nil {
			return fmt.Errorf("invalid blacklisted account %s: %w", account, err)
		}
		if _, ok := seen[account]; ok {
			return fmt.Errorf("duplicate blacklisted account %s", account)
		}
		seen[account] = struct{}{}
	}

	return gs.Params.Validate()
}
