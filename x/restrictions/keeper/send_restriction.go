package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/WolfZAlpha/prosdepth/x/restrictions/types"
)

// SendRestrictionFn implements the SendRestriction function for the bank module.
// This function is called before every coin transfer to validate if it should
// be allowed. It never mutates state.
func (k Keeper) SendRestrictionFn(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) (sdk.AccAddress, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	// Module operations are exempt on both sides: sale distribution, vesting
	// escrow payouts, fee payments.
	if k.IsModuleAccount(sdkCtx, from) || k.IsModuleAccount(sdkCtx, to) {
		return to, nil
	}

	if k.IsBlacklisted(ctx, from) {
		return to, errorsmod.Wrapf(types.ErrAccountBlacklisted, "sender %s", from.String())
	}
	if k.IsBlacklisted(ctx, to) {
		return to, errorsmod.Wrapf(types.ErrAccountBlacklisted, "recipient %s", to.String())
	}

	// Only the gated denom is checked against the vesting ledger.
	gatedDenom := k.GetParams(sdkCtx).GatedDenom
	gatedAmount := amt.AmountOf(gatedDenom)
	if gatedAmount.IsPositive() {
		now := sdkCtx.BlockTime().Unix()
		if !k.vestingKeeper.CanTransfer(ctx, from.String(), gatedAmount, now) {
			return to, errorsmod.Wrapf(
				types.ErrVestingLocked,
				"sender %s cannot move %s%s: amount exceeds vested balance",
				from.String(), gatedAmount.String(), gatedDenom,
			)
		}
	}

	return to, nil
}

// IsModuleAccount checks if the given address is a module account
func (k Keeper) IsModuleAccount(ctx sdk.Context, addr sdk.AccAddress) bool {
	account := k.accountKeeper.GetAccount(ctx, addr)
	if account != nil {
		if _, isModuleAccount := account.(*authtypes.ModuleAccount); isModuleAccount {
			return true
		}
	}
	return false
}
