package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Bamzhie/hedera/config"
	"github.com/Bamzhie/hedera/internal/core/ports"
	"github.com/Bamzhie/hedera/internal/core/ports/mocks"
	"github.com/Bamzhie/hedera/pkg/apperror"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testOperatorID = "0.0.1234"
	testMnemonic   = "test test test test test test test test test test test junk"
	testKeyHex     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testEvmAddress = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
)

func testHederaConfig() config.HederaConfig {
	return config.HederaConfig{
		OperatorAccountID:     testOperatorID,
		OperatorMnemonic:      testMnemonic,
		SeedPhrase:            testMnemonic,
		MirrorBaseURL:         "https://testnet.mirrornode.hedera.com",
		ExplorerBaseURL:       "https://hashscan.io/testnet",
		InitialBalanceTinybar: 20000,
		TransferAmountTinybar: 10000,
		MaxTransactionFee:     100,
		MaxQueryPayment:       50,
		TokenPropagationDelay: 3 * time.Second,
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestNewLedgerClient_MissingOperator(t *testing.T) {
	cfg := testHederaConfig()
	cfg.OperatorMnemonic = ""

	client, err := NewLedgerClient(cfg, zerolog.Nop())
	assert.Nil(t, client)
	assertAppErrorCode(t, err, "CFG_002")
}

func TestNewLedgerClient_InvalidAccountID(t *testing.T) {
	cfg := testHederaConfig()
	cfg.OperatorAccountID = "not-an-account-id"

	client, err := NewLedgerClient(cfg, zerolog.Nop())
	assert.Nil(t, client)
	assertAppErrorCode(t, err, "CFG_005")
}

func TestNewLedgerClient_InvalidMnemonic(t *testing.T) {
	cfg := testHederaConfig()
	cfg.OperatorMnemonic = "definitely not a valid mnemonic phrase"

	client, err := NewLedgerClient(cfg, zerolog.Nop())
	assert.Nil(t, client)
	assertAppErrorCode(t, err, "CFG_005")
}

func TestNewLedgerClient_Valid(t *testing.T) {
	client, err := NewLedgerClient(testHederaConfig(), zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, client)
	defer client.Close()

	assert.Equal(t, testOperatorID, client.GetOperatorAccountID().String())
}

func TestCreateAccount_NilClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockAccountRepository(ctrl) // no calls expected

	svc := NewLedgerService(nil, testHederaConfig(), repo, mocks.NewMockMirrorClient(ctrl), nil, zerolog.Nop())

	account, err := svc.CreateAccount(context.Background())
	assert.Nil(t, account)
	assertAppErrorCode(t, err, "CFG_001")
}

func TestTransferHbar_NilClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockAccountRepository(ctrl)

	svc := NewLedgerService(nil, testHederaConfig(), repo, mocks.NewMockMirrorClient(ctrl), nil, zerolog.Nop())

	result, err := svc.TransferHbar(context.Background())
	assert.Nil(t, result)
	assertAppErrorCode(t, err, "CFG_001")
}

func TestTransferHbar_MissingOperatorID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockAccountRepository(ctrl)

	cfg := testHederaConfig()
	cfg.OperatorAccountID = ""
	svc := NewLedgerService(hedera.ClientForTestnet(), cfg, repo, mocks.NewMockMirrorClient(ctrl), nil, zerolog.Nop())

	result, err := svc.TransferHbar(context.Background())
	assert.Nil(t, result)
	assertAppErrorCode(t, err, "CFG_002")
}

func TestTransferHbar_EmptyStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockAccountRepository(ctrl)
	repo.EXPECT().FindMostRecent(gomock.Any()).Return(nil, nil)

	svc := NewLedgerService(hedera.ClientForTestnet(), testHederaConfig(), repo, mocks.NewMockMirrorClient(ctrl), nil, zerolog.Nop())

	result, err := svc.TransferHbar(context.Background())
	assert.Nil(t, result)
	assertAppErrorCode(t, err, "STORE_001")
}

func TestTransferHbar_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockAccountRepository(ctrl)
	repo.EXPECT().FindMostRecent(gomock.Any()).Return(nil, errors.New("connection refused"))

	svc := NewLedgerService(hedera.ClientForTestnet(), testHederaConfig(), repo, mocks.NewMockMirrorClient(ctrl), nil, zerolog.Nop())

	result, err := svc.TransferHbar(context.Background())
	assert.Nil(t, result)
	assertAppErrorCode(t, err, "SYS_001")
}

func TestQueryBalance_NilClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewLedgerService(nil, testHederaConfig(), mocks.NewMockAccountRepository(ctrl), mocks.NewMockMirrorClient(ctrl), nil, zerolog.Nop())

	result := svc.QueryBalance(context.Background(), "0.0.5005")
	require.NotNil(t, result)
	assert.Equal(t, "error", result.Status)
	assert.Contains(t, result.Message, "error: ")
	assert.Nil(t, result.Balance)
}

func TestQueryBalance_InvalidAccountID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewLedgerService(hedera.ClientForTestnet(), testHederaConfig(), mocks.NewMockAccountRepository(ctrl), mocks.NewMockMirrorClient(ctrl), nil, zerolog.Nop())

	result := svc.QueryBalance(context.Background(), "not-an-id")
	require.NotNil(t, result)
	assert.Equal(t, "error", result.Status)
	assert.Contains(t, result.Message, "not-an-id")
}

func TestCreateToken_MissingConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testHederaConfig()
	svc := NewLedgerService(nil, cfg, mocks.NewMockAccountRepository(ctrl), mocks.NewMockMirrorClient(ctrl), nil, zerolog.Nop())

	result, err := svc.CreateToken(context.Background())
	assert.Nil(t, result)
	assertAppErrorCode(t, err, "CFG_004")
}

func TestCreateToken_InvalidAccountID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testHederaConfig()
	cfg.TokenAccountID = "not-an-account-id"
	cfg.TokenPrivateKey = "deadbeef"
	svc := NewLedgerService(nil, cfg, mocks.NewMockAccountRepository(ctrl), mocks.NewMockMirrorClient(ctrl), nil, zerolog.Nop())

	result, err := svc.CreateToken(context.Background())
	assert.Nil(t, result)
	assertAppErrorCode(t, err, "CFG_005")
}

func TestCreateToken_InvalidPrivateKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testHederaConfig()
	cfg.TokenAccountID = "0.0.9999"
	cfg.TokenPrivateKey = "not hex at all"
	svc := NewLedgerService(nil, cfg, mocks.NewMockAccountRepository(ctrl), mocks.NewMockMirrorClient(ctrl), nil, zerolog.Nop())

	result, err := svc.CreateToken(context.Background())
	assert.Nil(t, result)
	assertAppErrorCode(t, err, "CFG_005")
}

func TestDeriveAccountDetails_MissingSeedPhrase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testHederaConfig()
	cfg.SeedPhrase = ""
	svc := NewLedgerService(nil, cfg, mocks.NewMockAccountRepository(ctrl), mocks.NewMockMirrorClient(ctrl), nil, zerolog.Nop())

	details, err := svc.DeriveAccountDetails(context.Background())
	assert.Nil(t, details)
	assertAppErrorCode(t, err, "CFG_003")
}

func TestDeriveAccountDetails_InvalidSeedPhrase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testHederaConfig()
	cfg.SeedPhrase = "this is not a valid mnemonic"
	svc := NewLedgerService(nil, cfg, mocks.NewMockAccountRepository(ctrl), mocks.NewMockMirrorClient(ctrl), nil, zerolog.Nop())

	details, err := svc.DeriveAccountDetails(context.Background())
	assert.Nil(t, details)
	assertAppErrorCode(t, err, "CFG_005")
}

func TestDeriveAccountDetails_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mirror := mocks.NewMockMirrorClient(ctrl)
	mirror.EXPECT().BalanceURL(testEvmAddress).Return("https://mirror.example/balances?account.id=" + testEvmAddress)
	mirror.EXPECT().AccountBalance(gomock.Any(), testEvmAddress).
		Return(&ports.MirrorAccountBalance{AccountID: "0.0.7777", Balance: 123456789}, nil)

	svc := NewLedgerService(nil, testHederaConfig(), mocks.NewMockAccountRepository(ctrl), mirror, nil, zerolog.Nop())

	details, err := svc.DeriveAccountDetails(context.Background())
	require.NoError(t, err)
	require.NotNil(t, details)

	assert.Equal(t, testKeyHex, details.PrivateKeyHex)
	assert.Equal(t, testEvmAddress, details.EvmAddress)
	assert.Equal(t, "https://hashscan.io/testnet/account/"+testEvmAddress, details.ExplorerURL)
	require.NotNil(t, details.AccountID)
	assert.Equal(t, "0.0.7777", *details.AccountID)
	require.NotNil(t, details.BalanceTinybar)
	assert.Equal(t, int64(123456789), *details.BalanceTinybar)
	require.NotNil(t, details.BalanceHbar)
	assert.Equal(t, "1.23456789", *details.BalanceHbar)
}

func TestDeriveAccountDetails_MirrorFailurePartialResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mirror := mocks.NewMockMirrorClient(ctrl)
	mirror.EXPECT().BalanceURL(testEvmAddress).Return("https://mirror.example/balances")
	mirror.EXPECT().AccountBalance(gomock.Any(), testEvmAddress).
		Return(nil, errors.New("mirror unreachable"))

	svc := NewLedgerService(nil, testHederaConfig(), mocks.NewMockAccountRepository(ctrl), mirror, nil, zerolog.Nop())

	details, err := svc.DeriveAccountDetails(context.Background())
	require.NoError(t, err)
	require.NotNil(t, details)

	assert.Equal(t, testKeyHex, details.PrivateKeyHex)
	assert.Equal(t, testEvmAddress, details.EvmAddress)
	assert.Nil(t, details.AccountID)
	assert.Nil(t, details.BalanceTinybar)
	assert.Nil(t, details.BalanceHbar)
}

func TestDeriveAccountDetails_NoMirrorEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mirror := mocks.NewMockMirrorClient(ctrl)
	mirror.EXPECT().BalanceURL(testEvmAddress).Return("https://mirror.example/balances")
	mirror.EXPECT().AccountBalance(gomock.Any(), testEvmAddress).Return(nil, nil)

	svc := NewLedgerService(nil, testHederaConfig(), mocks.NewMockAccountRepository(ctrl), mirror, nil, zerolog.Nop())

	details, err := svc.DeriveAccountDetails(context.Background())
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Nil(t, details.BalanceTinybar)
}

func TestDeriveAccountDetails_CacheHitSkipsMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cached, err := json.Marshal(ports.MirrorAccountBalance{AccountID: "0.0.7777", Balance: 500})
	require.NoError(t, err)

	cache := mocks.NewMockBalanceCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), testEvmAddress).Return(cached, nil)

	mirror := mocks.NewMockMirrorClient(ctrl)
	mirror.EXPECT().BalanceURL(testEvmAddress).Return("https://mirror.example/balances")
	// AccountBalance must not be called on a cache hit.

	svc := NewLedgerService(nil, testHederaConfig(), mocks.NewMockAccountRepository(ctrl), mirror, cache, zerolog.Nop())

	details, err := svc.DeriveAccountDetails(context.Background())
	require.NoError(t, err)
	require.NotNil(t, details.BalanceTinybar)
	assert.Equal(t, int64(500), *details.BalanceTinybar)
}

func TestDeriveAccountDetails_CacheMissPopulatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockBalanceCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), testEvmAddress).Return(nil, nil)
	cache.EXPECT().Set(gomock.Any(), testEvmAddress, gomock.Any(), balanceCacheTTL).Return(nil)

	mirror := mocks.NewMockMirrorClient(ctrl)
	mirror.EXPECT().BalanceURL(testEvmAddress).Return("https://mirror.example/balances")
	mirror.EXPECT().AccountBalance(gomock.Any(), testEvmAddress).
		Return(&ports.MirrorAccountBalance{AccountID: "0.0.7777", Balance: 42}, nil)

	svc := NewLedgerService(nil, testHederaConfig(), mocks.NewMockAccountRepository(ctrl), mirror, cache, zerolog.Nop())

	details, err := svc.DeriveAccountDetails(context.Background())
	require.NoError(t, err)
	require.NotNil(t, details.BalanceTinybar)
	assert.Equal(t, int64(42), *details.BalanceTinybar)
}

func TestDeriveAccountDetails_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mirror := mocks.NewMockMirrorClient(ctrl)
	mirror.EXPECT().BalanceURL(testEvmAddress).Return("u").Times(2)
	mirror.EXPECT().AccountBalance(gomock.Any(), testEvmAddress).Return(nil, nil).Times(2)

	svc := NewLedgerService(nil, testHederaConfig(), mocks.NewMockAccountRepository(ctrl), mirror, nil, zerolog.Nop())

	first, err := svc.DeriveAccountDetails(context.Background())
	require.NoError(t, err)
	second, err := svc.DeriveAccountDetails(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.PrivateKeyHex, second.PrivateKeyHex)
	assert.Equal(t, first.EvmAddress, second.EvmAddress)
}

func TestSleepCtx_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sleepCtx(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}
