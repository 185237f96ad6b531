package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WolfZAlpha/prosdepth/x/lockvesting/types"
)

// CreateGrant escrows the grant amount from the authority and records a fresh
// vesting grant for the target account. A second grant for the same account
// replaces the first; whatever the old grant had not yet released stays in
// escrow and is folded into the new total.
func (k msgServer) CreateGrant(goCtx context.Context, msg *types.MsgCreateGrant) (*types.MsgCreateGrantResponse, error) {
	if k.GetAuthority() != msg.Authority {
		return nil, errorsmod.Wrapf(types.ErrInvalidSigner, "invalid authority; expected %s, got %s", k.GetAuthority(), msg.Authority)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	if msg.Amount.Denom != types.TokenDenom {
		return nil, types.ErrInvalidDenom.Wrapf("expected %s, got %s", types.TokenDenom, msg.Amount.Denom)
	}
	if !msg.Amount.Amount.IsPositive() {
		return nil, types.ErrInvalidGrantAmount.Wrapf("amount %s", msg.Amount.Amount)
	}

	params := k.GetParams(ctx)
	durationSeconds, err := params.DurationSeconds(msg.ScheduleKind)
	if err != nil {
		return nil, err
	}

	authorityAddr, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		return nil, err
	}

	err = k.bookkeepingBankKeeper.SendCoinsFromAccountToModule(
		ctx, authorityAddr, types.ModuleName, sdk.NewCoins(msg.Amount),
		fmt.Sprintf("vesting escrow for %s", msg.Account))
	if err != nil {
		return nil, err
	}
	k.bookkeepingBankKeeper.LogSubAccountTransaction(
		ctx, types.ModuleName, msg.Account, EscrowSubAccount, msg.Amount,
		"vesting grant created for "+msg.Account)

	now := ctx.BlockTime().Unix()
	total := msg.Amount.Amount

	if old, found := k.GetGrant(ctx, msg.Account); found {
		remaining := old.UnreleasedAmount()
		if remaining.IsPositive() {
			total = total.Add(remaining)
		}
		k.Logger().Warn("overwriting existing vesting grant",
			"account", msg.Account,
			"carried_over", remaining.String())
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeOverwriteGrant,
				sdk.NewAttribute(types.AttributeKeyAccount, msg.Account),
				sdk.NewAttribute(types.AttributeKeyForfeitedAmount, remaining.String()),
			),
		)
	}

	grant := types.VestingGrant{
		Account:        msg.Account,
		TotalAmount:    total,
		ReleasedAmount: math.ZeroInt(),
		StartTime:      now,
		EndTime:        now + int64(durationSeconds),
		Active:         true,
		ScheduleKind:   msg.ScheduleKind,
	}
	k.SetGrant(ctx, grant)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCreateGrant,
			sdk.NewAttribute(types.AttributeKeyAccount, msg.Account),
			sdk.NewAttribute(types.AttributeKeyAmount, grant.TotalAmount.String()),
			sdk.NewAttribute(types.AttributeKeyScheduleKind, grant.ScheduleKind.String()),
			sdk.NewAttribute(types.AttributeKeyStartTime, fmt.Sprintf("%d", grant.StartTime)),
			sdk.NewAttribute(types.AttributeKeyEndTime, fmt.Sprintf("%d", grant.EndTime)),
		),
	)

	k.Logger().Info("created vesting grant",
		"account", msg.Account,
		"amount", grant.TotalAmount.String(),
		"kind", grant.ScheduleKind.String(),
		"end_time", grant.EndTime)

	return &types.MsgCreateGrantResponse{}, nil
}
