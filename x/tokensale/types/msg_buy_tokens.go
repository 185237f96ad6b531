package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ sdk.Msg = &MsgBuyTokens{}

// NewMsgBuyTokens creates a new MsgBuyTokens instance
func NewMsgBuyTokens(buyer string, payment sdk.Coin, requestedAmount math.Int) *MsgBuyTokens {
	return &MsgBuyTokens{
		Buyer:           buyer,
		Payment:         payment,
		RequestedAmount: requestedAmount,
	}
}

// ValidateBasic performs basic validation of the MsgBuyTokens
func (msg *MsgBuyTokens) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Buyer); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid buyer address: %s", err)
	}

	if !msg.Payment.IsValid() || !msg.Payment.IsPositive() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, "payment must be a positive coin")
	}

	if msg.RequestedAmount.IsNil() || !msg.RequestedAmount.IsPositive() {
		return ErrInvalidRequestedAmount.Wrapf("got %s", msg.RequestedAmount)
	}

	return nil
}
