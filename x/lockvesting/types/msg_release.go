package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ sdk.Msg = &MsgRelease{}

// NewMsgRelease creates a new MsgRelease instance
func NewMsgRelease(account string) *MsgRelease {
	return &MsgRelease{
		Account: account,
	}
}

// ValidateBasic performs basic validation of the MsgRelease
func (msg *MsgRelease) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Account); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid account address: %s", err)
	}

	return nil
}
