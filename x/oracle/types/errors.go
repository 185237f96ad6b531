package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/oracle module sentinel errors
var (
	ErrNoQuote          = sdkerrors.Register(ModuleName, 1100, "no price quote submitted yet")
	ErrInvalidPrice     = sdkerrors.Register(ModuleName, 1101, "quote price must be positive")
	ErrStaleTimestamp   = sdkerrors.Register(ModuleName, 1102, "quote timestamp older than stored quote")
	ErrInvalidSigner    = sdkerrors.Register(ModuleName, 1103, "expected authority account as only signer for oracle message")
	ErrInvalidTimestamp = sdkerrors.Register(ModuleName, 1104, "quote timestamp must be positive")
)
