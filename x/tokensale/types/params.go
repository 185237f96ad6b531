package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
)

var _ paramtypes.ParamSet = (*Params)(nil)

// Parameter keys
var (
	KeyTaxRateBps   = []byte("TaxRateBps")
	KeyMinBuyAmount = []byte("MinBuyAmount")
	KeyMaxBuyAmount = []byte("MaxBuyAmount")
	KeyPaymentDenom = []byte("PaymentDenom")
)

// Default parameter values
const (
	// DefaultTaxRateBps is 5% in basis points
	DefaultTaxRateBps = uint64(500)

	DefaultPaymentDenom = "ustake"
)

var (
	// DefaultMinBuyAmount is one whole payment token in base units
	DefaultMinBuyAmount = math.NewInt(1_000_000)

	// DefaultMaxBuyAmount is one million whole payment tokens in base units
	DefaultMaxBuyAmount = math.NewInt(1_000_000_000_000)
)

// ParamKeyTable the param key table for launch module
func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// NewParams creates a new Params instance
func NewParams(taxRateBps uint64, minBuyAmount, maxBuyAmount math.Int, paymentDenom string) Params {
	return Params{
		TaxRateBps:   taxRateBps,
		MinBuyAmount: minBuyAmount,
		MaxBuyAmount: maxBuyAmount,
		PaymentDenom: paymentDenom,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(DefaultTaxRateBps, DefaultMinBuyAmount, DefaultMaxBuyAmount, DefaultPaymentDenom)
}

// ParamSetPairs get the params.ParamSet
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyTaxRateBps, &p.TaxRateBps, validateTaxRateBps),
		paramtypes.NewParamSetPair(KeyMinBuyAmount, &p.MinBuyAmount, validateBuyAmount),
		paramtypes.NewParamSetPair(KeyMaxBuyAmount, &p.MaxBuyAmount, validateBuyAmount),
		paramtypes.NewParamSetPair(KeyPaymentDenom, &p.PaymentDenom, validatePaymentDenom),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := validateTaxRateBps(p.TaxRateBps); err != nil {
		return err
	}
	if err := validateBuyAmount(p.MinBuyAmount); err != nil {
		return err
	}
	if err := validateBuyAmount(p.MaxBuyAmount); err != nil {
		return err
	}
	if p.MinBuyAmount.GT(p.MaxBuyAmount) {
		return fmt.Errorf("min buy amount %s exceeds max buy amount %s", p.MinBuyAmount, p.MaxBuyAmount)
	}
	return validatePaymentDenom(p.PaymentDenom)
}

func validateTaxRateBps(i interface{}) error {
	v, ok := i.(uint64)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	if v > 10_000 {
		return fmt.Errorf("tax rate %d exceeds 10000 basis points", v)
	}
	return nil
}

func validateBuyAmount(i interface{}) error {
	v, ok := i.(math.Int)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	if v.IsNil() || !v.IsPositive() {
		return fmt.Errorf("buy amount must be positive")
	}
	return nil
}

func validatePaymentDenom(i interface{}) error {
	v, ok := i.(string)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	if err := sdk.ValidateDenom(v); err != nil {
		return fmt.Errorf("invalid payment denom: %w", err)
	}
	return nil
}
