package types

import (
	"fmt"

	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
)

var _ paramtypes.ParamSet = (*Params)(nil)

// Parameter store keys
var (
	KeyShortTermSeconds = []byte("ShortTermSeconds")
	KeyLongTermSeconds  = []byte("LongTermSeconds")
)

const (
	// DefaultShortTermSeconds is 180 days.
	DefaultShortTermSeconds = uint64(180 * 24 * 60 * 60)
	// DefaultLongTermSeconds is 730 days.
	DefaultLongTermSeconds = uint64(730 * 24 * 60 * 60)
)

// ParamKeyTable the param key table for launch module
func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// NewParams creates a new Params instance
func NewParams(shortTermSeconds, longTermSeconds uint64) Params {
	return Params{
		ShortTermSeconds: shortTermSeconds,
		LongTermSeconds:  longTermSeconds,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(DefaultShortTermSeconds, DefaultLongTermSeconds)
}

// ParamSetPairs get the params.ParamSet
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyShortTermSeconds, &p.ShortTermSeconds, validateDurationSeconds),
		paramtypes.NewParamSetPair(KeyLongTermSeconds, &p.LongTermSeconds, validateDurationSeconds),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := validateDurationSeconds(p.ShortTermSeconds); err != nil {
		return err
	}
	if err := validateDurationSeconds(p.LongTermSeconds); err != nil {
		return err
	}
	if p.ShortTermSeconds > p.LongTermSeconds {
		return fmt.Errorf("short term duration %d exceeds long term duration %d", p.ShortTermSeconds, p.LongTermSeconds)
	}
	return nil
}

// DurationSeconds returns the vesting duration configured for the given kind.
func (p Params) DurationSeconds(kind ScheduleKind) (uint64, error) {
	switch kind {
	case ScheduleKind_SCHEDULE_KIND_SHORT_TERM:
		return p.ShortTermSeconds, nil
	case ScheduleKind_SCHEDULE_KIND_LONG_TERM:
		return p.LongTermSeconds, nil
	default:
		return 0, ErrInvalidScheduleKind.Wrapf("kind %d", kind)
	}
}

func validateDurationSeconds(v interface{}) error {
	seconds, ok := v.(uint64)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", v)
	}

	if seconds == 0 {
		return fmt.Errorf("vesting duration must be positive: %d", seconds)
	}

	return nil
}
