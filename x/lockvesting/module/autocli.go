package lockvesting

import (
	autocliv1 "cosmossdk.io/api/cosmos/autocli/v1"

	"github.com/WolfZAlpha/prosdepth/x/lockvesting/types"
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
					RpcMethod: "Grant",
					Use:       "grant [account]",
					Short:     "Shows the vesting grant for an account",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "account"},
					},
				},
				{
					RpcMethod: "Releasable",
					Use:       "releasable [account]",
					Short:     "Shows how much of an account's grant can be released now",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{
						{ProtoField: "account"},
					},
				},
			},
		},
		Tx: &autocliv1.ServiceCommandDescriptor{
			Service:              types.Msg_serviceDesc.ServiceName,
			EnhanceCustomCommand: true, // only required if you want to use the custom command
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				{
					RpcMethod: "CreateGrant",
					Skip:      true, // skipped because authority gated
				},
				{
					RpcMethod: "Release",
					Use:       "release",
					Short:     "Release every vested token of the sender's grant",
				},
				{
					RpcMethod: "UpdateParams",
					Skip:      true, // skipped because authority gated
				},
			},
		},
	}
}
