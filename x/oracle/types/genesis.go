package types

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if gs.LatestQuote != nil {
		if gs.LatestQuote.Price.IsNil() || !gs.LatestQuote.Price.IsPositive() {
			return ErrInvalidPrice
		}
		if gs.LatestQuote.UpdatedAt <= 0 {
			return ErrInvalidTimestamp
		}
	}

	return gs.Params.Validate()
}
