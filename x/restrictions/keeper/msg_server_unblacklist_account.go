package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WolfZAlpha/prosdepth/x/restrictions/types"
)

func (k msgServer) UnblacklistAccount(goCtx context.Context, msg *types.MsgUnblacklistAccount) (*types.MsgUnblacklistAccountResponse, error) {
	if k.GetAuthority() != msg.Authority {
		return nil, errorsmod.Wrapf(types.ErrInvalidSigner, "invalid authority; expected %s, got %s", k.GetAuthority(), msg.Authority)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	addr, err := sdk.AccAddressFromBech32(msg.Account)
	if err != nil {
		return nil, err
	}

	if err := k.RemoveBlacklisted(ctx, addr); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUnblacklistAccount,
			sdk.NewAttribute(types.AttributeKeyAccount, msg.Account),
		),
	)

	k.Logger().Info("unblacklisted account", "account", msg.Account)

	return &types.MsgUnblacklistAccountResponse{}, nil
}
