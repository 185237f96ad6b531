package types

// DONTCOVER

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/restrictions module sentinel errors
var (
	ErrInvalidSigner      = sdkerrors.Register(ModuleName, 1100, "expected gov account as only signer for proposal message")
	ErrAccountBlacklisted = sdkerrors.Register(ModuleName, 1101, "account is blacklisted")
	ErrVestingLocked      = sdkerrors.Register(ModuleName, 1102, "amount exceeds the sender's vested balance")
	ErrAlreadyBlacklisted = sdkerrors.Register(ModuleName, 1103, "account is already blacklisted")
	ErrNotBlacklisted     = sdkerrors.Register(ModuleName, 1104, "account is not blacklisted")
)
