package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WolfZAlpha/prosdepth/x/tokensale/types"
)

func (k msgServer) WithdrawResidual(goCtx context.Context, msg *types.MsgWithdrawResidual) (*types.MsgWithdrawResidualResponse, error) {
	if k.GetAuthority() != msg.Authority {
		return nil, errorsmod.Wrapf(types.ErrInvalidSigner, "invalid authority; expected %s, got %s", k.GetAuthority(), msg.Authority)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.armPurchaseGuard(ctx); err != nil {
		return nil, err
	}
	defer k.disarmPurchaseGuard(ctx)

	state, err := k.GetSaleState(ctx)
	if err != nil {
		return nil, err
	}
	if state.Active {
		return nil, types.ErrSaleNotSoldOut.Wrap("sale is still active")
	}

	accounts, found := k.GetFundAccounts(ctx)
	if !found {
		return nil, types.ErrAccountsNotSet
	}
	treasuryAddr, err := sdk.AccAddressFromBech32(accounts.Treasury)
	if err != nil {
		return nil, err
	}

	moduleAddr := k.accountKeeper.GetModuleAddress(types.ModuleName)
	balance := k.bankKeeper.GetBalance(ctx, moduleAddr, msg.Denom)
	if balance.IsPositive() {
		if err := k.bookkeepingBankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, treasuryAddr, sdk.NewCoins(balance), "token sale residual sweep"); err != nil {
			return nil, err
		}
	}

	k.Logger().Info("residual withdrawn", "denom", msg.Denom, "amount", balance.Amount.String())

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeWithdrawResidual,
			sdk.NewAttribute(types.AttributeKeyDenom, msg.Denom),
			sdk.NewAttribute(types.AttributeKeyAmount, balance.Amount.String()),
		),
	)

	return &types.MsgWithdrawResidualResponse{Amount: balance}, nil
}
