package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var (
	_ sdk.Msg = &MsgEndSale{}
	_ sdk.Msg = &MsgPauseSale{}
	_ sdk.Msg = &MsgResumeSale{}
	_ sdk.Msg = &MsgWithdrawResidual{}
	_ sdk.Msg = &MsgUpdateParams{}
)

func NewMsgEndSale(authority string) *MsgEndSale {
	return &MsgEndSale{Authority: authority}
}

func (msg *MsgEndSale) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return nil
}

func NewMsgPauseSale(authority string) *MsgPauseSale {
	return &MsgPauseSale{Authority: authority}
}

func (msg *MsgPauseSale) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return nil
}

func NewMsgResumeSale(authority string) *MsgResumeSale {
	return &MsgResumeSale{Authority: authority}
}

func (msg *MsgResumeSale) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return nil
}

func NewMsgWithdrawResidual(authority, denom string) *MsgWithdrawResidual {
	return &MsgWithdrawResidual{Authority: authority, Denom: denom}
}

func (msg *MsgWithdrawResidual) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "invalid residual denom: %s", err)
	}
	return nil
}

func NewMsgUpdateParams(authority string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{Authority: authority, Params: params}
}

func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return msg.Params.Validate()
}
