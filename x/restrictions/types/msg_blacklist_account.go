package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ sdk.Msg = &MsgBlacklistAccount{}

// NewMsgBlacklistAccount creates a new MsgBlacklistAccount instance
func NewMsgBlacklistAccount(authority, account string) *MsgBlacklistAccount {
	return &MsgBlacklistAccount{
		Authority: authority,
		Account:   account,
	}
}

// ValidateBasic performs basic validation of the MsgBlacklistAccount
func (msg *MsgBlacklistAccount) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Account); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid account address: %s", err)
	}

	return nil
}
