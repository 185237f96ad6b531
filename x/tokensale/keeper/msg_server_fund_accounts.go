package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WolfZAlpha/prosdepth/x/tokensale/types"
)

func (k msgServer) SetFundAccounts(goCtx context.Context, msg *types.MsgSetFundAccounts) (*types.MsgSetFundAccountsResponse, error) {
	if k.GetAuthority() != msg.Authority {
		return nil, errorsmod.Wrapf(types.ErrInvalidSigner, "invalid authority; expected %s, got %s", k.GetAuthority(), msg.Authority)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	if _, found := k.GetFundAccounts(ctx); found {
		return nil, types.ErrAccountsAlreadySet
	}

	accounts := types.FundAccounts{
		Treasury:     msg.Treasury,
		TaxCollector: msg.TaxCollector,
	}
	if err := k.Keeper.SetFundAccounts(ctx, accounts); err != nil {
		return nil, err
	}

	k.Logger().Info("fund accounts set", "treasury", msg.Treasury, "tax_collector", msg.TaxCollector)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeSetFundAccounts,
			sdk.NewAttribute(types.AttributeKeyTreasury, msg.Treasury),
			sdk.NewAttribute(types.AttributeKeyTaxCollector, msg.TaxCollector),
		),
	)

	return &types.MsgSetFundAccountsResponse{}, nil
}

func (k msgServer) UpdateFundAccounts(goCtx context.Context, msg *types.MsgUpdateFundAccounts) (*types.MsgUpdateFundAccountsResponse, error) {
	if k.GetAuthority() != msg.Authority {
		return nil, errorsmod.Wrapf(types.ErrInvalidSigner, "invalid authority; expected %s, got %s", k.GetAuthority(), msg.Authority)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	current, found := k.GetFundAccounts(ctx)
	if !found {
		return nil, types.ErrAccountsNotSet
	}
	if current.Treasury == msg.Treasury && current.TaxCollector == msg.TaxCollector {
		return nil, types.ErrDuplicateAccount
	}

	accounts := types.FundAccounts{
		Treasury:     msg.Treasury,
		TaxCollector: msg.TaxCollector,
	}
	if err := k.Keeper.SetFundAccounts(ctx, accounts); err != nil {
		return nil, err
	}

	k.Logger().Info("fund accounts updated", "treasury", msg.Treasury, "tax_collector", msg.TaxCollector)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeUpdateFundAccounts,
			sdk.NewAttribute(types.AttributeKeyTreasury, msg.Treasury),
			sdk.NewAttribute(types.AttributeKeyTaxCollector, msg.TaxCollector),
		),
	)

	return &types.MsgUpdateFundAccountsResponse{}, nil
}
