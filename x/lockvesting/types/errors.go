package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/lockvesting module sentinel errors
var (
	ErrInvalidSigner       = sdkerrors.Register(ModuleName, 1100, "expected authority account as only signer for lockvesting message")
	ErrInvalidScheduleKind = sdkerrors.Register(ModuleName, 1101, "unknown vesting schedule kind")
	ErrInvalidGrantAmount  = sdkerrors.Register(ModuleName, 1102, "grant amount must be positive")
	ErrGrantNotFound       = sdkerrors.Register(ModuleName, 1103, "no vesting grant for account")
	ErrGrantNotActive      = sdkerrors.Register(ModuleName, 1104, "vesting grant is not active")
	ErrNothingToRelease    = sdkerrors.Register(ModuleName, 1105, "no vested tokens available for release")
	ErrReentrantCall       = sdkerrors.Register(ModuleName, 1106, "release already in progress")
	ErrInvalidDenom        = sdkerrors.Register(ModuleName, 1107, "grant denomination not accepted")
)
