package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WolfZAlpha/prosdepth/x/tokensale/types"
)

func (k msgServer) PauseSale(goCtx context.Context, msg *types.MsgPauseSale) (*types.MsgPauseSaleResponse, error) {
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
	if state.Paused {
		return nil, types.ErrSalePaused
	}

	state.Paused = true
	if err := k.SetSaleState(ctx, state); err != nil {
		return nil, err
	}

	k.Logger().Info("sale paused", "authority", msg.Authority)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypePauseSale),
	)

	return &types.MsgPauseSaleResponse{}, nil
}

func (k msgServer) ResumeSale(goCtx context.Context, msg *types.MsgResumeSale) (*types.MsgResumeSaleResponse, error) {
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
	if !state.Paused {
		return nil, types.ErrSaleNotPaused
	}

	state.Paused = false
	if err := k.SetSaleState(ctx, state); err != nil {
		return nil, err
	}

	k.Logger().Info("sale resumed", "authority", msg.Authority)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeResumeSale),
	)

	return &types.MsgResumeSaleResponse{}, nil
}
