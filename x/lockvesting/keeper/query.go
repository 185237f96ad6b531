package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/WolfZAlpha/prosdepth/x/lockvesting/types"
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

// Grant queries the vesting grant of an account
func (k Keeper) Grant(goCtx context.Context, req *types.QueryGrantRequest) (*types.QueryGrantResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	if req.Account == "" {
		return nil, status.Error(codes.InvalidArgument, "account cannot be empty")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	grant, found := k.GetGrant(ctx, req.Account)
	if !found {
		return nil, status.Errorf(codes.NotFound, "no grant for account %s", req.Account)
	}

	return &types.QueryGrantResponse{Grant: grant}, nil
}

// Releasable queries how much of an account's grant could be paid out right now
func (k Keeper) Releasable(goCtx context.Context, req *types.QueryReleasableRequest) (*types.QueryReleasableResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	if req.Account == "" {
		return nil, status.Error(codes.InvalidArgument, "account cannot be empty")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	if _, found := k.GetGrant(ctx, req.Account); !found {
		return nil, status.Errorf(codes.NotFound, "no grant for account %s", req.Account)
	}

	return &types.QueryReleasableResponse{Amount: k.ReleasableAmount(ctx, req.Account, ctx.BlockTime().Unix())}, nil
}
