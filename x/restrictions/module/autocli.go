package restrictions

import (
	autocliv1 "cosmossdk.io/api/cosmos/autocli/v1"

	"github.com/WolfZAlpha/prosdepth/x/restrictions/types"
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
					RpcMethod: "TransferEligibility",
					Use:       "transfer-eligibility [from-address] [to-address] [amount]",
					Short:     "Checks whether a transfer would pass the gate",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "from_address"},
						{ProtoField: "to_address"},
						{ProtoField: "amount"},
					},
				},
			},
		},
		Tx: &autocliv1.ServiceCommandDescriptor{
			Service:              types.Msg_serviceDesc.ServiceName,
			EnhanceCustomCommand: true, // only required if you want to use the custom command
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				{
					RpcMethod: "BlacklistAccount",
					Skip:      true, // skipped because authority gated
				},
				{
					RpcMethod: "UnblacklistAccount",
					Skip:      true, // skipped because authority gated
				},
			},
		},
	}
}
