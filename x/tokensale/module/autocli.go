package tokensale

import (
	autocliv1 "cosmossdk.io/api/cosmos/autocli/v1"

	"github.com/WolfZAlpha/prosdepth/x/tokensale/types"
)

// AutoCLIOptions implements the autocli.HasAutoCLIConfig interface.
func (am AppModule) AutoCLIOptions() *autocliv1.ModuleOptions {
	return &autocliv1.ModuleOptions{
		Query: &autocliv1.ServiceCommandDescriptor{
			Service: types.Query_serviceDesc.ServiceName,
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				{
					RpcMethod: "Params",
					Use:       "params",
					Short:     "Shows the parameters of the module",
				},
				{
					RpcMethod: "SaleStatus",
					Use:       "sale-status",
					Short:     "Shows the sale state and the tier ladder",
				},
				{
					RpcMethod: "Buyer",
					Use:       "buyer [address]",
					Short:     "Shows the cumulative purchase record of an address",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "address"},
					},
				},
			},
		},
		Tx: &autocliv1.ServiceCommandDescriptor{
			Service:              types.Msg_serviceDesc.ServiceName,
			EnhanceCustomCommand: true, // only required if you want to use the custom command
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				{
					RpcMethod: "BuyTokens",
					Use:       "buy-tokens [payment] [requested-amount]",
					Short:     "Buy sale tokens at the current oracle price",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "payment"},
						{ProtoField: "requested_amount"},
					},
				},
				{
					RpcMethod: "EndSale",
					Skip:      true, // skipped because authority gated
				},
				{
					RpcMethod: "PauseSale",
					Skip:      true, // skipped because authority gated
				},
				{
					RpcMethod: "ResumeSale",
					Skip:      true, // skipped because authority gated
				},
				{
					RpcMethod: "SetFundAccounts",
					Skip:      true, // skipped because authority gated
				},
				{
					RpcMethod: "UpdateFundAccounts",
					Skip:      true, // skipped because authority gated
				},
				{
					RpcMethod: "WithdrawResidual",
					Skip:      true, // skipped because authority gated
				},
				{
					RpcMethod: "UpdateParams",
					Skip:      true, // skipped because authority gated
				},
			},
		},
	}
}
