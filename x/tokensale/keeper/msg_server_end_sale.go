package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WolfZAlpha/prosdepth/x/tokensale/types"
)

func (k msgServer) EndSale(goCtx context.Context, msg *types.MsgEndSale) (*types.MsgEndSaleResponse, error) {
	if k.GetAuthority() != msg.Authority {
		return nil, errorsmod.Wrapf(types.ErrInvalidSigner, "invalid authority; expected %s, got %s", k.GetAuthority(), msg.Authority)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	state, err := k.GetSaleState(ctx)
	if err != nil {
		return nil, err
	}
	if !state.Active {
		return nil, types.ErrSaleEnded
	}

	for _, tier := range k.GetAllTiers(ctx) {
		if tier.Sold.LT(tier.Capacity) {
			return nil, types.ErrSaleNotSoldOut.Wrapf("tier %d sold %s of %s", tier.Id, tier.Sold, tier.Capacity)
		}
	}

	state.Active = false
	state.Paused = false
	if err := k.SetSaleState(ctx, state); err != nil {
		return nil, err
	}

	k.Logger().Info("sale ended", "authority", msg.Authority)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeEndSale),
	)

	return &types.MsgEndSaleResponse{}, nil
}
