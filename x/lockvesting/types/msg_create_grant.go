package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ sdk.Msg = &MsgCreateGrant{}

// NewMsgCreateGrant creates a new MsgCreateGrant instance
func NewMsgCreateGrant(authority, account string, amount sdk.Coin, kind ScheduleKind) *MsgCreateGrant {
	return &MsgCreateGrant{
		Authority:    authority,
		Account:      account,
		Amount:       amount,
		ScheduleKind: kind,
	}
}

// ValidateBasic performs basic validation of the MsgCreateGrant
func (msg *MsgCreateGrant) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Account); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid grant account: %s", err)
	}

	if !msg.Amount.IsValid() || !msg.Amount.IsPositive() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, "grant amount must be positive")
	}

	if msg.ScheduleKind != ScheduleKind_SCHEDULE_KIND_SHORT_TERM &&
		msg.ScheduleKind != ScheduleKind_SCHEDULE_KIND_LONG_TERM {
		return ErrInvalidScheduleKind.Wrapf("kind %d", msg.ScheduleKind)
	}

	return nil
}
