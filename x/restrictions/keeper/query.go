package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/WolfZAlpha/prosdepth/x/restrictions/types"
)

var _ types.QueryServer = Keeper{}

// Params queries the module parameters
func (k Keeper) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryParamsResponse{Params: k.GetParams(ctx)}, nil
}

// TransferEligibility runs a hypothetical transfer through the gate and
// reports the verdict without executing anything.
func (k Keeper) TransferEligibility(goCtx context.Context, req *types.QueryTransferEligibilityRequest) (*types.QueryTransferEligibilityResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	from, err := sdk.AccAddressFromBech32(req.FromAddress)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid from address: %s", err)
	}
	to, err := sdk.AccAddressFromBech32(req.ToAddress)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid to address: %s", err)
	}
	if !req.Amount.IsValid() {
		return nil, status.Error(codes.InvalidArgument, "invalid amount")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	if _, err := k.SendRestrictionFn(ctx, from, to, sdk.NewCoins(req.Amount)); err != nil {
		return &types.QueryTransferEligibilityResponse{
			Allowed: false,
			Reason:  err.Error(),
		}, nil
	}

	return &types.QueryTransferEligibilityResponse{Allowed: true}, nil
}
