package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WolfZAlpha/prosdepth/x/oracle/types"
)

// SubmitPrice handles the MsgSubmitPrice message. Quotes arrive from the
// trusted feed through governance authority; each submission must carry a
// timestamp no older than the stored quote.
func (k msgServer) SubmitPrice(goCtx context.Context, msg *types.MsgSubmitPrice) (*types.MsgSubmitPriceResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if k.GetAuthority() != msg.Authority {
		return nil, types.ErrInvalidSigner.Wrapf("invalid authority; expected %s, got %s", k.GetAuthority(), msg.Authority)
	}

	if msg.Price.IsNil() || !msg.Price.IsPositive() {
		return nil, types.ErrInvalidPrice.Wrapf("price must be positive, got %s", msg.Price)
	}

	if existing, err := k.GetLatestQuote(ctx); err == nil {
		if msg.Timestamp < existing.UpdatedAt {
			return nil, types.ErrStaleTimestamp.Wrapf(
				"quote timestamp %d precedes stored quote timestamp %d", msg.Timestamp, existing.UpdatedAt)
		}
	}

	quote := types.PriceQuote{
		Price:     msg.Price,
		UpdatedAt: msg.Timestamp,
	}
	if err := k.SetQuote(ctx, quote); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSubmitPrice,
			sdk.NewAttribute(types.AttributeKeyPrice, msg.Price.String()),
			sdk.NewAttribute(types.AttributeKeyUpdatedAt, strconv.FormatInt(msg.Timestamp, 10)),
		),
	)

	k.Logger().Info("price quote submitted",
		"price", msg.Price.String(),
		"updated_at", msg.Timestamp,
	)

	return &types.MsgSubmitPriceResponse{}, nil
}
