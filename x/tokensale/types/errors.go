package types

// DONTCOVER

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/tokensale module sentinel errors
var (
	ErrInvalidSigner          = sdkerrors.Register(ModuleName, 1100, "expected gov account as only signer for proposal message")
	ErrSaleInactive           = sdkerrors.Register(ModuleName, 1101, "sale is not active")
	ErrSalePaused             = sdkerrors.Register(ModuleName, 1102, "sale is paused")
	ErrSaleNotPaused          = sdkerrors.Register(ModuleName, 1103, "sale is not paused")
	ErrAccountsNotSet         = sdkerrors.Register(ModuleName, 1104, "fund accounts are not set")
	ErrAccountsAlreadySet     = sdkerrors.Register(ModuleName, 1105, "fund accounts are already set")
	ErrDuplicateAccount       = sdkerrors.Register(ModuleName, 1106, "fund account update repeats the current value")
	ErrInvalidPaymentDenom    = sdkerrors.Register(ModuleName, 1107, "payment denom does not match sale params")
	ErrBelowMinimumBuy        = sdkerrors.Register(ModuleName, 1108, "payment is below the minimum buy amount")
	ErrAboveMaximumBuy        = sdkerrors.Register(ModuleName, 1109, "cumulative payment exceeds the maximum buy amount")
	ErrInvalidRequestedAmount = sdkerrors.Register(ModuleName, 1110, "requested token amount must be positive")
	ErrInsufficientPayment    = sdkerrors.Register(ModuleName, 1111, "payment buys less than one token")
	ErrInvalidPrice           = sdkerrors.Register(ModuleName, 1112, "oracle quote yields a non-positive unit price")
	ErrSaleNotSoldOut         = sdkerrors.Register(ModuleName, 1113, "sale capacity is not exhausted")
	ErrBalanceMismatch        = sdkerrors.Register(ModuleName, 1114, "minted balance delta does not match")
	ErrReentrantCall          = sdkerrors.Register(ModuleName, 1115, "re-entrant call detected")
	ErrSaleEnded              = sdkerrors.Register(ModuleName, 1116, "sale has ended")
	ErrTierNotFound           = sdkerrors.Register(ModuleName, 1117, "tier not found")
)
