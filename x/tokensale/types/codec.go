package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/msgservice"
)

func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgBuyTokens{}, "tokensale/BuyTokens", nil)
	cdc.RegisterConcrete(&MsgEndSale{}, "tokensale/EndSale", nil)
	cdc.RegisterConcrete(&MsgPauseSale{}, "tokensale/PauseSale", nil)
	cdc.RegisterConcrete(&MsgResumeSale{}, "tokensale/ResumeSale", nil)
	cdc.RegisterConcrete(&MsgSetFundAccounts{}, "tokensale/SetFundAccounts", nil)
	cdc.RegisterConcrete(&MsgUpdateFundAccounts{}, "tokensale/UpdateFundAccounts", nil)
	cdc.RegisterConcrete(&MsgWithdrawResidual{}, "tokensale/WithdrawResidual", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "tokensale/UpdateParams", nil)
}

func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgBuyTokens{},
		&MsgEndSale{},
		&MsgPauseSale{},
		&MsgResumeSale{},
		&MsgSetFundAccounts{},
		&MsgUpdateFundAccounts{},
		&MsgWithdrawResidual{},
		&MsgUpdateParams{},
	)

	msgservice.RegisterMsgServiceDesc(registry, &_Msg_serviceDesc)
}

var (
	Amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewProtoCodec(cdctypes.NewInterfaceRegistry())
)
