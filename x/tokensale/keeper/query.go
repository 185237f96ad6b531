package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/WolfZAlpha/prosdepth/x/tokensale/types"
)

var _ types.QueryServer = Keeper{}

func (k Keeper) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	params, err := k.GetParams(goCtx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryParamsResponse{Params: params}, nil
}

func (k Keeper) SaleStatus(goCtx context.Context, req *types.QuerySaleStatusRequest) (*types.QuerySaleStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	state, err := k.GetSaleState(goCtx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QuerySaleStatusResponse{
		SaleState: state,
		Tiers:     k.GetAllTiers(goCtx),
	}, nil
}

func (k Keeper) Buyer(goCtx context.Context, req *types.QueryBuyerRequest) (*types.QueryBuyerResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if _, err := sdk.AccAddressFromBech32(req.Address); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid address")
	}

	return &types.QueryBuyerResponse{Buyer: k.GetBuyer(goCtx, req.Address)}, nil
}
