package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ sdk.Msg = &MsgSubmitPrice{}

// NewMsgSubmitPrice creates a new MsgSubmitPrice instance
func NewMsgSubmitPrice(authority string, price math.Int, timestamp int64) *MsgSubmitPrice {
	return &MsgSubmitPrice{
		Authority: authority,
		Price:     price,
		Timestamp: timestamp,
	}
}

// ValidateBasic does a sanity check on the provided data
func (msg *MsgSubmitPrice) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address (%s)", err)
	}

	if msg.Price.IsNil() || !msg.Price.IsPositive() {
		return ErrInvalidPrice
	}

	if msg.Timestamp <= 0 {
		return ErrInvalidTimestamp
	}

	return nil
}
