package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WolfZAlpha/prosdepth/x/tokensale/types"
)

func (k msgServer) BuyTokens(goCtx context.Context, msg *types.MsgBuyTokens) (*types.MsgBuyTokensResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.armPurchaseGuard(ctx); err != nil {
		return nil, err
	}
	defer k.disarmPurchaseGuard(ctx)

	state, err := k.GetSaleState(ctx)
	if err != nil {
		return nil, err
	}
	if !state.Active {
		return nil, types.ErrSaleInactive
	}
	if state.Paused {
		return nil, types.ErrSalePaused
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	if msg.Payment.Denom != params.PaymentDenom {
		return nil, types.ErrInvalidPaymentDenom.Wrapf("got %s, want %s", msg.Payment.Denom, params.PaymentDenom)
	}
	if msg.Payment.Amount.LT(params.MinBuyAmount) {
		return nil, types.ErrBelowMinimumBuy.Wrapf("payment %s, minimum %s", msg.Payment.Amount, params.MinBuyAmount)
	}

	buyer := k.GetBuyer(ctx, msg.Buyer)
	cumulative := buyer.TotalPaid.Add(msg.Payment.Amount)
	if cumulative.GT(params.MaxBuyAmount) {
		return nil, types.ErrAboveMaximumBuy.Wrapf("cumulative %s, maximum %s", cumulative, params.MaxBuyAmount)
	}

	accounts, found := k.GetFundAccounts(ctx)
	if !found {
		return nil, types.ErrAccountsNotSet
	}

	quote, err := k.oracleKeeper.GetLatestQuote(ctx)
	if err != nil {
		return nil, err
	}

	// Tax comes off the top; the remainder is the fill budget.
	tax := msg.Payment.Amount.MulRaw(int64(params.TaxRateBps)).QuoRaw(10_000)
	budget := msg.Payment.Amount.Sub(tax)

	fill, err := ComputeFill(k.GetAllTiers(ctx), state.CurrentTier, budget, msg.RequestedAmount, quote.Price)
	if err != nil {
		return nil, err
	}
	if !fill.Tokens.IsPositive() {
		return nil, types.ErrInsufficientPayment.Wrapf("budget %s buys no tokens", budget)
	}

	refund := msg.Payment.Amount.Sub(tax).Sub(fill.Cost)

	buyerAddr, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return nil, err
	}
	treasuryAddr, err := sdk.AccAddressFromBech32(accounts.Treasury)
	if err != nil {
		return nil, err
	}
	taxAddr, err := sdk.AccAddressFromBech32(accounts.TaxCollector)
	if err != nil {
		return nil, err
	}

	// Pull the full payment, then route tax and cost to the proceeds accounts
	// and return the remainder. tax + cost + refund equals the payment exactly.
	payment := sdk.NewCoins(msg.Payment)
	if err := k.bookkeepingBankKeeper.SendCoinsFromAccountToModule(ctx, buyerAddr, types.ModuleName, payment, "token sale payment"); err != nil {
		return nil, err
	}
	if tax.IsPositive() {
		taxCoins := sdk.NewCoins(sdk.NewCoin(params.PaymentDenom, tax))
		if err := k.bookkeepingBankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, taxAddr, taxCoins, "token sale tax"); err != nil {
			return nil, err
		}
	}
	costCoins := sdk.NewCoins(sdk.NewCoin(params.PaymentDenom, fill.Cost))
	if err := k.bookkeepingBankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, treasuryAddr, costCoins, "token sale proceeds"); err != nil {
		return nil, err
	}
	if refund.IsPositive() {
		refundCoins := sdk.NewCoins(sdk.NewCoin(params.PaymentDenom, refund))
		if err := k.bookkeepingBankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, buyerAddr, refundCoins, "token sale refund"); err != nil {
			return nil, err
		}
	}

	// Mint the bought tokens and verify the buyer's balance moved by the
	// minted amount, give or take one base unit.
	minted := fill.Tokens.MulRaw(types.TokenBaseUnits)
	mintedCoins := sdk.NewCoins(sdk.NewCoin(types.TokenDenom, minted))
	balanceBefore := k.bankKeeper.GetBalance(ctx, buyerAddr, types.TokenDenom)
	if err := k.bookkeepingBankKeeper.MintCoins(ctx, types.ModuleName, mintedCoins, "token sale mint"); err != nil {
		return nil, err
	}
	if err := k.bookkeepingBankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, buyerAddr, mintedCoins, "token sale delivery"); err != nil {
		return nil, err
	}
	balanceAfter := k.bankKeeper.GetBalance(ctx, buyerAddr, types.TokenDenom)
	delta := balanceAfter.Amount.Sub(balanceBefore.Amount)
	if delta.Sub(minted).Abs().GT(math.OneInt()) {
		return nil, types.ErrBalanceMismatch.Wrapf("expected delta %s, got %s", minted, delta)
	}

	// Apply the fill to the ladder and the sale state in one batch.
	for _, tierFill := range fill.Fills {
		tier, err := k.GetTier(ctx, tierFill.TierId)
		if err != nil {
			return nil, err
		}
		tier.Sold = tier.Sold.Add(tierFill.Tokens)
		if err := k.SetTier(ctx, tier); err != nil {
			return nil, err
		}
	}
	state.CurrentTier = fill.FinalTier
	if fill.SoldOut {
		state.Active = false
		k.Logger().Info("sale capacity exhausted, sale closed", "final_tier", fill.FinalTier)
	}
	if err := k.SetSaleState(ctx, state); err != nil {
		return nil, err
	}

	buyer.Address = msg.Buyer
	if buyer.TotalPaid.IsNil() {
		buyer.TotalPaid = math.ZeroInt()
	}
	buyer.TotalPaid = buyer.TotalPaid.Add(msg.Payment.Amount)
	if err := k.SetBuyer(ctx, buyer); err != nil {
		return nil, err
	}

	k.Logger().Info("tokens bought",
		"buyer", msg.Buyer,
		"tokens", fill.Tokens.String(),
		"cost", fill.Cost.String(),
		"tax", tax.String(),
		"refund", refund.String(),
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeBuyTokens,
			sdk.NewAttribute(types.AttributeKeyBuyer, msg.Buyer),
			sdk.NewAttribute(types.AttributeKeyPayment, msg.Payment.String()),
			sdk.NewAttribute(types.AttributeKeyTokens, fill.Tokens.String()),
			sdk.NewAttribute(types.AttributeKeyCost, fill.Cost.String()),
			sdk.NewAttribute(types.AttributeKeyTax, tax.String()),
			sdk.NewAttribute(types.AttributeKeyRefund, refund.String()),
			sdk.NewAttribute(types.AttributeKeyTier, math.NewIntFromUint64(fill.FinalTier).String()),
		),
	)

	return &types.MsgBuyTokensResponse{
		TokensBought: fill.Tokens,
		Cost:         fill.Cost,
		Tax:          tax,
		Refund:       refund,
	}, nil
}
