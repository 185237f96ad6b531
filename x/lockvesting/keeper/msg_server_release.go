package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WolfZAlpha/prosdepth/x/lockvesting/types"
)

// Release pays the caller every vested-but-unreleased token of their grant
// out of the module escrow. The whole payout path runs under the re-entry
// guard so the bank send can never loop back into a second release.
func (k msgServer) Release(goCtx context.Context, msg *types.MsgRelease) (*types.MsgReleaseResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.armReleaseGuard(ctx); err != nil {
		return nil, err
	}
	defer k.disarmReleaseGuard(ctx)

	now := ctx.BlockTime().Unix()
	delta, err := k.Keeper.Release(ctx, msg.Account, now)
	if err != nil {
		return nil, err
	}

	accountAddr, err := sdk.AccAddressFromBech32(msg.Account)
	if err != nil {
		return nil, err
	}

	released := sdk.NewCoin(types.TokenDenom, delta)
	err = k.bookkeepingBankKeeper.SendCoinsFromModuleToAccount(
		ctx, types.ModuleName, accountAddr, sdk.NewCoins(released), "vesting release")
	if err != nil {
		return nil, err
	}
	k.bookkeepingBankKeeper.LogSubAccountTransaction(
		ctx, msg.Account, types.ModuleName, EscrowSubAccount, released,
		"coins vested for "+msg.Account)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRelease,
			sdk.NewAttribute(types.AttributeKeyAccount, msg.Account),
			sdk.NewAttribute(types.AttributeKeyReleasedAmount, delta.String()),
		),
	)

	k.Logger().Info("released vested tokens",
		"account", msg.Account,
		"amount", delta.String())

	return &types.MsgReleaseResponse{Released: released}, nil
}
