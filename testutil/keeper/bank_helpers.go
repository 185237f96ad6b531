package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/mock/gomock"

	"github.com/WolfZAlpha/prosdepth/x/tokensale/types"
)

func (book *MockBookkeepingBankKeeper) ExpectAny(context sdk.Context) {
	book.EXPECT().SendCoinsFromAccountToModule(context, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	book.EXPECT().SendCoinsFromModuleToAccount(context, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	book.EXPECT().SendCoinsFromModuleToModule(context, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	book.EXPECT().MintCoins(context, gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	book.EXPECT().LogSubAccountTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

func coinsOf(amount int64) sdk.Coins {
	return sdk.Coins{
		sdk.NewInt64Coin(
			types.DefaultPaymentDenom,
			amount),
	}
}

func (book *MockBookkeepingBankKeeper) ExpectPay(context sdk.Context, who string, amount int64) *gomock.Call {
	whoAddr, err := sdk.AccAddressFromBech32(who)
	if err != nil {
		panic(err)
	}
	return book.EXPECT().SendCoinsFromAccountToModule(context, whoAddr, types.ModuleName, coinsOf(amount), gomock.Any())
}
