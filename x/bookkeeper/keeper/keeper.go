package keeper

import (
	"context"
	"fmt"
	"strings"

	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WolfZAlpha/prosdepth/x/bookkeeper/types"
)

// LogConfig selects which audit formats the keeper emits. DoubleEntry writes a
// debit/credit pair of structured lines per coin; SimpleEntry writes one
// column-aligned line per coin for grepping.
type LogConfig struct {
	DoubleEntry bool   `json:"double_entry"`
	SimpleEntry bool   `json:"simple_entry"`
	LogLevel    string `json:"log_level"`
}

type Keeper struct {
	cdc          codec.BinaryCodec
	storeService store.KVStoreService
	logger       log.Logger

	// the address capable of executing a MsgUpdateParams message. Typically, this
	// should be the x/gov module account.
	authority string

	bankKeeper types.BankKeeper
	logConfig  LogConfig
}

func NewKeeper(
	cdc codec.BinaryCodec,
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,

	bankKeeper types.BankKeeper,
	logConfig LogConfig,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	return Keeper{
		cdc:          cdc,
		storeService: storeService,
		authority:    authority,
		logger:       logger,

		bankKeeper: bankKeeper,
		logConfig:  logConfig,
	}
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// journal writes audit lines for every non-zero coin of a completed transfer.
func (k Keeper) journal(ctx context.Context, to, from string, amt sdk.Coins, memo string) {
	for _, coin := range amt {
		k.writeEntry(ctx, to, from, coin, memo, "")
	}
}

func (k Keeper) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins, memo string) error {
	if err := k.bankKeeper.SendCoins(ctx, fromAddr, toAddr, amt); err != nil {
		return err
	}
	k.journal(ctx, toAddr.String(), fromAddr.String(), amt, memo)
	return nil
}

func (k Keeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, memo string) error {
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, senderModule, recipientAddr, amt); err != nil {
		return err
	}
	k.journal(ctx, recipientAddr.String(), senderModule, amt, memo)
	return nil
}

func (k Keeper) SendCoinsFromModuleToModule(ctx context.Context, senderModule, recipientModule string, amt sdk.Coins, memo string) error {
	if err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, senderModule, recipientModule, amt); err != nil {
		return err
	}
	k.journal(ctx, recipientModule, senderModule, amt, memo)
	return nil
}

func (k Keeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, memo string) error {
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, senderAddr, recipientModule, amt); err != nil {
		return err
	}
	k.journal(ctx, recipientModule, senderAddr.String(), amt, memo)
	return nil
}

func (k Keeper) MintCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error {
	if amt.IsZero() {
		return nil
	}
	if err := k.bankKeeper.MintCoins(ctx, moduleName, amt); err != nil {
		return err
	}
	k.journal(ctx, moduleName, "supply", amt, memo)
	return nil
}

func (k Keeper) BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error {
	if amt.IsZero() {
		return nil
	}
	if err := k.bankKeeper.BurnCoins(ctx, moduleName, amt); err != nil {
		return err
	}
	k.journal(ctx, "supply", moduleName, amt, memo)
	return nil
}

// LogSubAccountTransaction records a movement between sub-accounts that the
// bank module never sees, such as escrow balances tracked inside a module
// account. Only the audit trail changes; no coins move.
func (k Keeper) LogSubAccountTransaction(ctx context.Context, recipient string, sender string, subAccount string, amt sdk.Coin, memo string) {
	k.writeEntry(ctx, recipient+"_"+subAccount, sender+"_"+subAccount, amt, memo, subAccount)
}

func (k Keeper) writeEntry(ctx context.Context, to, from string, coin sdk.Coin, memo, subAccount string) {
	if coin.Amount.IsZero() {
		return
	}
	height := sdk.UnwrapSDKContext(ctx).BlockHeight()
	emit := k.emitFunc()
	if k.logConfig.DoubleEntry {
		amount := coin.Amount.Int64()
		emit("TransactionAudit",
			"type", "debit", "account", to, "counteraccount", from,
			"amount", amount, "denom", coin.Denom, "memo", memo,
			"signedAmount", amount, "height", height)
		emit("TransactionAudit",
			"type", "credit", "account", from, "counteraccount", to,
			"amount", amount, "denom", coin.Denom, "memo", memo,
			"signedAmount", -amount, "height", height)
	}
	if k.logConfig.SimpleEntry {
		// %-64.64s pads and truncates so the account columns line up
		line := fmt.Sprintf("to=%-64.64s from=%-64.64s amount=%20d %-10s height=%8d memo=%s",
			to, from, coin.Amount.Int64(), coin.Denom, height, memo)
		if subAccount != "" {
			// Extra space after the tag keeps both entry kinds aligned
			emit("SubAccountEntry  " + line + " subaccount=" + subAccount)
		} else {
			emit("TransactionEntry " + line)
		}
	}
}

func (k Keeper) emitFunc() func(msg string, keyVals ...interface{}) {
	logger := k.Logger()
	switch strings.ToLower(k.logConfig.LogLevel) {
	case "debug":
		return logger.Debug
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Info
	}
}
