package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var (
	_ sdk.Msg = &MsgSetFundAccounts{}
	_ sdk.Msg = &MsgUpdateFundAccounts{}
)

func NewMsgSetFundAccounts(authority, treasury, taxCollector string) *MsgSetFundAccounts {
	return &MsgSetFundAccounts{
		Authority:    authority,
		Treasury:     treasury,
		TaxCollector: taxCollector,
	}
}

func (msg *MsgSetFundAccounts) ValidateBasic() error {
	return validateFundAccounts(msg.Authority, msg.Treasury, msg.TaxCollector)
}

func NewMsgUpdateFundAccounts(authority, treasury, taxCollector string) *MsgUpdateFundAccounts {
	return &MsgUpdateFundAccounts{
		Authority:    authority,
		Treasury:     treasury,
		TaxCollector: taxCollector,
	}
}

func (msg *MsgUpdateFundAccounts) ValidateBasic() error {
	return validateFundAccounts(msg.Authority, msg.Treasury, msg.TaxCollector)
}

func validateFundAccounts(authority, treasury, taxCollector string) error {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(treasury); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid treasury address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(taxCollector); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid tax collector address: %s", err)
	}
	if treasury == taxCollector {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "treasury and tax collector must be distinct accounts")
	}
	return nil
}
