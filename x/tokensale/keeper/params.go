package keeper

import (
	"context"

	"github.com/WolfZAlpha/prosdepth/x/tokensale/types"
)

// GetParams get all parameters as types.Params
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	return k.params.Get(ctx)
}

// SetParams set the params
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	return k.params.Set(ctx, params)
}
