package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WolfZAlpha/prosdepth/x/restrictions/types"
)

func (k msgServer) BlacklistAccount(goCtx context.Context, msg *types.MsgBlacklistAccount) (*types.MsgBlacklistAccountResponse, error) {
	if k.GetAuthority() != msg.Authority {
		return nil, errorsmod.Wrapf(types.ErrInvalidSigner, "invalid authority; expected %s, got %s", k.GetAuthority(), msg.Authority)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	addr, err := sdk.AccAddressFromBech32(msg.Account)
	if err != nil {
		return nil, err
	}

	if err := k.SetBlacklisted(ctx, addr); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBlacklistAccount,
			sdk.NewAttribute(types.AttributeKeyAccount, msg.Account),
		),
	)

	k.Logger().Info("blacklisted account", "account", msg.Account)

	return &types.MsgBlacklistAccountResponse{}, nil
}
