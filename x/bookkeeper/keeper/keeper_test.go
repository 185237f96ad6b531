package keeper_test

import (
	"context"
	"fmt"
	"testing"

	"cosmossdk.io/log"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/suite"

	"github.com/WolfZAlpha/prosdepth/testutil/sample"
	"github.com/WolfZAlpha/prosdepth/x/bookkeeper/keeper"
)

type bankCall struct {
	method string
	from   string
	to     string
	amount sdk.Coins
}

// SimpleBankKeeper records every call so tests can assert the keeper forwards
// transfers untouched. Setting failNext makes the next call return an error.
type SimpleBankKeeper struct {
	calls    []bankCall
	failNext bool
}

func (b *SimpleBankKeeper) take(method, from, to string, amt sdk.Coins) error {
	if b.failNext {
		b.failNext = false
		return errors.ErrInsufficientFunds
	}
	b.calls = append(b.calls, bankCall{method: method, from: from, to: to, amount: amt})
	return nil
}

func (b *SimpleBankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.take("SendCoins", fromAddr.String(), toAddr.String(), amt)
}

func (b *SimpleBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.take("SendCoinsFromModuleToAccount", senderModule, recipientAddr.String(), amt)
}

func (b *SimpleBankKeeper) SendCoinsFromModuleToModule(_ context.Context, senderModule, recipientModule string, amt sdk.Coins) error {
	return b.take("SendCoinsFromModuleToModule", senderModule, recipientModule, amt)
}

func (b *SimpleBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return b.take("SendCoinsFromAccountToModule", senderAddr.String(), recipientModule, amt)
}

func (b *SimpleBankKeeper) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	return b.take("MintCoins", "supply", moduleName, amt)
}

func (b *SimpleBankKeeper) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	return b.take("BurnCoins", moduleName, "supply", amt)
}

type logLine struct {
	msg     string
	keyVals []any
}

// recordingLogger captures log output so tests can assert on the audit trail.
type recordingLogger struct {
	lines []logLine
}

func (l *recordingLogger) Info(msg string, keyVals ...any)  { l.record(msg, keyVals...) }
func (l *recordingLogger) Warn(msg string, keyVals ...any)  { l.record(msg, keyVals...) }
func (l *recordingLogger) Error(msg string, keyVals ...any) { l.record(msg, keyVals...) }
func (l *recordingLogger) Debug(msg string, keyVals ...any) { l.record(msg, keyVals...) }
func (l *recordingLogger) With(_ ...any) log.Logger         { return l }
func (l *recordingLogger) Impl() any                        { return l }

func (l *recordingLogger) record(msg string, keyVals ...any) {
	l.lines = append(l.lines, logLine{msg: msg, keyVals: keyVals})
}

type KeeperTestSuite struct {
	suite.Suite
	ctx    sdk.Context
	keeper keeper.Keeper
	bank   *SimpleBankKeeper
	logs   *recordingLogger
}

func (suite *KeeperTestSuite) SetupTest() {
	suite.setup(keeper.LogConfig{DoubleEntry: true, LogLevel: "info"})
}

func (suite *KeeperTestSuite) setup(logConfig keeper.LogConfig) {
	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	suite.bank = &SimpleBankKeeper{}
	suite.logs = &recordingLogger{}
	suite.keeper = keeper.NewKeeper(cdc, nil, suite.logs, authority.String(), suite.bank, logConfig)
	suite.ctx = sdk.NewContext(nil, cmtproto.Header{Height: 7}, false, log.NewNopLogger())
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func coins(amount int64) sdk.Coins {
	return sdk.NewCoins(sdk.NewInt64Coin("upros", amount))
}

func (suite *KeeperTestSuite) TestSendCoinsLogsDoubleEntry() {
	from := sdk.MustAccAddressFromBech32(sample.AccAddress())
	to := sdk.MustAccAddressFromBech32(sample.AccAddress())

	err := suite.keeper.SendCoins(suite.ctx, from, to, coins(1500), "settlement")
	suite.Require().NoError(err)

	suite.Require().Len(suite.bank.calls, 1)
	suite.Require().Equal("SendCoins", suite.bank.calls[0].method)
	suite.Require().Equal(coins(1500), suite.bank.calls[0].amount)

	// One debit and one credit line per coin
	suite.Require().Len(suite.logs.lines, 2)
	suite.Require().Equal("TransactionAudit", suite.logs.lines[0].msg)
	suite.Require().Equal("TransactionAudit", suite.logs.lines[1].msg)
	suite.Require().Contains(suite.logs.lines[0].keyVals, "debit")
	suite.Require().Contains(suite.logs.lines[0].keyVals, "settlement")
	suite.Require().Contains(suite.logs.lines[1].keyVals, "credit")
	suite.Require().Contains(suite.logs.lines[1].keyVals, int64(-1500))
}

func (suite *KeeperTestSuite) TestSendCoinsBankFailureSkipsLog() {
	from := sdk.MustAccAddressFromBech32(sample.AccAddress())
	to := sdk.MustAccAddressFromBech32(sample.AccAddress())

	suite.bank.failNext = true
	err := suite.keeper.SendCoins(suite.ctx, from, to, coins(100), "settlement")
	suite.Require().Error(err)
	suite.Require().Empty(suite.bank.calls)
	suite.Require().Empty(suite.logs.lines)
}

func (suite *KeeperTestSuite) TestModuleTransfersForwarded() {
	account := sdk.MustAccAddressFromBech32(sample.AccAddress())

	suite.Require().NoError(suite.keeper.SendCoinsFromAccountToModule(suite.ctx, account, "tokensale", coins(10), "payment"))
	suite.Require().NoError(suite.keeper.SendCoinsFromModuleToAccount(suite.ctx, "tokensale", account, coins(20), "refund"))
	suite.Require().NoError(suite.keeper.SendCoinsFromModuleToModule(suite.ctx, "tokensale", "lockvesting", coins(30), "escrow"))

	suite.Require().Len(suite.bank.calls, 3)
	suite.Require().Equal("SendCoinsFromAccountToModule", suite.bank.calls[0].method)
	suite.Require().Equal("SendCoinsFromModuleToAccount", suite.bank.calls[1].method)
	suite.Require().Equal("SendCoinsFromModuleToModule", suite.bank.calls[2].method)
	suite.Require().Equal("tokensale", suite.bank.calls[2].from)
	suite.Require().Equal("lockvesting", suite.bank.calls[2].to)
	suite.Require().Len(suite.logs.lines, 6)
}

func (suite *KeeperTestSuite) TestMintAndBurn() {
	suite.Require().NoError(suite.keeper.MintCoins(suite.ctx, "tokensale", coins(500), "mint"))
	suite.Require().NoError(suite.keeper.BurnCoins(suite.ctx, "tokensale", coins(200), "burn"))

	suite.Require().Len(suite.bank.calls, 2)
	suite.Require().Equal("MintCoins", suite.bank.calls[0].method)
	suite.Require().Equal("BurnCoins", suite.bank.calls[1].method)
}

func (suite *KeeperTestSuite) TestMintAndBurnZeroAreNoOps() {
	suite.Require().NoError(suite.keeper.MintCoins(suite.ctx, "tokensale", sdk.NewCoins(), "mint"))
	suite.Require().NoError(suite.keeper.BurnCoins(suite.ctx, "tokensale", sdk.NewCoins(), "burn"))
	suite.Require().Empty(suite.bank.calls)
}

func (suite *KeeperTestSuite) TestSimpleEntryFormat() {
	suite.setup(keeper.LogConfig{SimpleEntry: true, LogLevel: "info"})
	account := sdk.MustAccAddressFromBech32(sample.AccAddress())

	suite.Require().NoError(suite.keeper.SendCoinsFromAccountToModule(suite.ctx, account, "tokensale", coins(42), "payment"))

	suite.Require().Len(suite.logs.lines, 1)
	suite.Require().Contains(suite.logs.lines[0].msg, "TransactionEntry")
	suite.Require().Contains(suite.logs.lines[0].msg, "memo=payment")
	suite.Require().Contains(suite.logs.lines[0].msg, fmt.Sprintf("height=%8d", 7))
}

func (suite *KeeperTestSuite) TestLogSubAccountTransaction() {
	suite.setup(keeper.LogConfig{SimpleEntry: true, LogLevel: "info"})

	suite.keeper.LogSubAccountTransaction(suite.ctx, "lockvesting", "alice", "escrow", sdk.NewInt64Coin("upros", 9), "grant")

	suite.Require().Len(suite.logs.lines, 1)
	suite.Require().Contains(suite.logs.lines[0].msg, "SubAccountEntry")
	suite.Require().Contains(suite.logs.lines[0].msg, "subaccount=escrow")

	// Zero amounts never reach the log
	suite.logs.lines = nil
	suite.keeper.LogSubAccountTransaction(suite.ctx, "lockvesting", "alice", "escrow", sdk.NewInt64Coin("upros", 0), "grant")
	suite.Require().Empty(suite.logs.lines)
}
