package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
)

var _ paramtypes.ParamSet = (*Params)(nil)

// Parameter keys
var (
	KeyGatedDenom = []byte("GatedDenom")
)

// Default parameter values
const (
	DefaultGatedDenom = "upros"
)

// ParamKeyTable the param key table for launch module
func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// NewParams creates a new Params instance
func NewParams(gatedDenom string) Params {
	return Params{
		GatedDenom: gatedDenom,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(DefaultGatedDenom)
}

// ParamSetPairs get the params.ParamSet
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyGatedDenom, &p.GatedDenom, validateGatedDenom),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	return validateGatedDenom(p.GatedDenom)
}

func validateGatedDenom(i interface{}) error {
	v, ok := i.(string)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	if err := sdk.ValidateDenom(v); err != nil {
		return fmt.Errorf("invalid gated denom: %w", err)
	}
	return nil
}
