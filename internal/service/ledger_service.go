package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Bamzhie/hedera/config"
	"github.com/Bamzhie/hedera/internal/core/domain"
	"github.com/Bamzhie/hedera/internal/core/ports"
	"github.com/Bamzhie/hedera/internal/hdwallet"
	"github.com/Bamzhie/hedera/pkg/apperror"

	"github.com/google/uuid"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/rs/zerolog"
)

// Fungible token parameters, fixed by product decision.
const (
	tokenName          = "bamzhie coin"
	tokenSymbol        = "BZT"
	tokenDecimals      = 2
	tokenInitialSupply = 1_000_000
)

// balanceCacheTTL bounds staleness of cached mirror balances. Mirror state
// is eventually consistent, so a short window is acceptable.
const balanceCacheTTL = 30 * time.Second

// NewLedgerClient builds the shared testnet client handle from the operator
// credentials. The operator key is derived from the configured mnemonic.
// Missing or undecodable credentials are fatal configuration errors.
//
// The returned client is treated as read-only after construction; operations
// that need a different operator build their own short-lived client.
func NewLedgerClient(cfg config.HederaConfig, log zerolog.Logger) (*hedera.Client, error) {
	if !cfg.HasOperator() {
		return nil, apperror.ErrMissingOperator()
	}

	operatorID, err := hedera.AccountIDFromString(cfg.OperatorAccountID)
	if err != nil {
		return nil, apperror.ErrInvalidCredentials(fmt.Errorf("parse operator account id: %w", err))
	}

	mnemonic, err := hedera.MnemonicFromString(cfg.OperatorMnemonic)
	if err != nil {
		return nil, apperror.ErrInvalidCredentials(fmt.Errorf("parse operator mnemonic: %w", err))
	}
	operatorKey, err := mnemonic.ToStandardEd25519PrivateKey("", 0)
	if err != nil {
		return nil, apperror.ErrInvalidCredentials(fmt.Errorf("derive operator key from mnemonic: %w", err))
	}

	client := hedera.ClientForTestnet()
	client.SetOperator(operatorID, operatorKey)
	client.SetDefaultMaxTransactionFee(hedera.NewHbar(float64(cfg.MaxTransactionFee)))
	client.SetDefaultMaxQueryPayment(hedera.NewHbar(float64(cfg.MaxQueryPayment)))

	log.Info().
		Str("operator", operatorID.String()).
		Msg("ledger client configured for testnet")

	return client, nil
}

// LedgerServiceImpl implements ports.LedgerService.
type LedgerServiceImpl struct {
	client      *hedera.Client // shared handle; nil means not initialized
	cfg         config.HederaConfig
	accountRepo ports.AccountRepository
	mirror      ports.MirrorClient
	cache       ports.BalanceCache // nil = caching disabled
	log         zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	client *hedera.Client,
	cfg config.HederaConfig,
	accountRepo ports.AccountRepository,
	mirror ports.MirrorClient,
	cache ports.BalanceCache,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		client:      client,
		cfg:         cfg,
		accountRepo: accountRepo,
		mirror:      mirror,
		cache:       cache,
		log:         log,
	}
}

// CreateAccount mints a new ledger account funded with the configured
// initial balance, persists the keypair, and returns the identity triple.
func (s *LedgerServiceImpl) CreateAccount(ctx context.Context) (*ports.NewAccount, error) {
	if s.client == nil {
		return nil, apperror.ErrClientNotInitialized()
	}

	newKey, err := hedera.PrivateKeyGenerateEd25519()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate keypair: %w", err))
	}
	newPublicKey := newKey.PublicKey()

	resp, err := hedera.NewAccountCreateTransaction().
		SetKey(newPublicKey).
		SetInitialBalance(hedera.HbarFromTinybar(s.cfg.InitialBalanceTinybar)).
		Execute(s.client)
	if err != nil {
		s.log.Error().Err(err).Msg("account creation submission failed")
		return nil, apperror.ErrSubmission("Failed to create a new account", err)
	}

	receipt, err := resp.GetReceipt(s.client)
	if err != nil {
		s.log.Error().Err(err).Msg("account creation receipt failed")
		return nil, apperror.ErrReceipt(err)
	}
	if receipt.AccountID == nil {
		return nil, apperror.ErrMissingEntityID("account")
	}
	newAccountID := *receipt.AccountID

	// Confirm the account is funded before persisting its keys.
	balance, err := hedera.NewAccountBalanceQuery().
		SetAccountID(newAccountID).
		Execute(s.client)
	if err != nil {
		s.log.Error().Err(err).Str("account_id", newAccountID.String()).Msg("new account balance confirmation failed")
		return nil, apperror.ErrSubmission("Failed to confirm the new account balance", err)
	}

	s.log.Info().
		Str("account_id", newAccountID.String()).
		Int64("balance_tinybar", balance.Hbars.AsTinybar()).
		Msg("account created")

	account := &domain.StoredAccount{
		ID:         uuid.New(),
		AccountID:  newAccountID.String(),
		PrivateKey: newKey.String(),
		PublicKey:  newPublicKey.String(),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	return &ports.NewAccount{
		AccountID:  account.AccountID,
		PrivateKey: account.PrivateKey,
		PublicKey:  account.PublicKey,
	}, nil
}

// TransferHbar pays the fixed transfer amount from the operator to the most
// recently minted stored account. Nothing is submitted when the store is
// empty or the configuration is incomplete.
func (s *LedgerServiceImpl) TransferHbar(ctx context.Context) (*ports.TransferResult, error) {
	if s.client == nil {
		return nil, apperror.ErrClientNotInitialized()
	}
	if s.cfg.OperatorAccountID == "" {
		return nil, apperror.ErrMissingOperator()
	}
	operatorID, err := hedera.AccountIDFromString(s.cfg.OperatorAccountID)
	if err != nil {
		return nil, apperror.ErrInvalidCredentials(fmt.Errorf("parse operator account id: %w", err))
	}

	recipient, err := s.accountRepo.FindMostRecent(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if recipient == nil {
		return nil, apperror.ErrNoAccountFound()
	}
	recipientID, err := hedera.AccountIDFromString(recipient.AccountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("parse stored account id %q: %w", recipient.AccountID, err))
	}

	amount := s.cfg.TransferAmountTinybar
	s.log.Info().
		Str("from", operatorID.String()).
		Str("to", recipientID.String()).
		Int64("amount_tinybar", amount).
		Msg("transferring HBAR")

	// Balanced two-leg transfer: debit operator, credit recipient.
	resp, err := hedera.NewTransferTransaction().
		AddHbarTransfer(operatorID, hedera.HbarFromTinybar(-amount)).
		AddHbarTransfer(recipientID, hedera.HbarFromTinybar(amount)).
		Execute(s.client)
	if err != nil {
		s.log.Error().Err(err).Msg("transfer submission failed")
		return nil, apperror.ErrSubmission("Failed to transfer HBAR", err)
	}

	receipt, err := resp.GetReceipt(s.client)
	if err != nil {
		s.log.Error().Err(err).Msg("transfer receipt failed")
		return nil, apperror.ErrReceipt(err)
	}

	return &ports.TransferResult{
		Status:        receipt.Status.String(),
		TransactionID: resp.TransactionID.String(),
	}, nil
}

// QueryBalance returns the balance and query cost for accountID. Every
// failure is normalized into a {status:"error"} result so the HTTP layer
// always has a response body to return.
func (s *LedgerServiceImpl) QueryBalance(ctx context.Context, accountID string) *ports.BalanceResult {
	result, err := s.queryBalance(ctx, accountID)
	if err != nil {
		s.log.Warn().Err(err).Str("account_id", accountID).Msg("balance query failed")
		return &ports.BalanceResult{
			Status:  "error",
			Message: fmt.Sprintf("error: %v", err),
		}
	}
	return result
}

func (s *LedgerServiceImpl) queryBalance(_ context.Context, accountID string) (*ports.BalanceResult, error) {
	if s.client == nil {
		return nil, apperror.ErrClientNotInitialized()
	}
	id, err := hedera.AccountIDFromString(accountID)
	if err != nil {
		return nil, fmt.Errorf("parse account id %q: %w", accountID, err)
	}

	cost, err := hedera.NewAccountBalanceQuery().
		SetAccountID(id).
		GetCost(s.client)
	if err != nil {
		return nil, fmt.Errorf("query cost: %w", err)
	}

	balance, err := hedera.NewAccountBalanceQuery().
		SetAccountID(id).
		Execute(s.client)
	if err != nil {
		return nil, fmt.Errorf("balance query: %w", err)
	}

	tinybar := balance.Hbars.AsTinybar()
	return &ports.BalanceResult{
		Balance:   &tinybar,
		QueryCost: cost.String(),
	}, nil
}

// CreateToken mints the fungible token under the token operator identity,
// a deliberately separate credential pair from the general operator. It
// builds its own short-lived client so in-flight operations on the shared
// handle are unaffected, and closes it on every exit path.
func (s *LedgerServiceImpl) CreateToken(ctx context.Context) (*ports.TokenResult, error) {
	if !s.cfg.HasTokenOperator() {
		s.log.Error().Msg("token operator credentials are not configured")
		return nil, apperror.ErrMissingTokenOperator()
	}

	operatorID, err := hedera.AccountIDFromString(s.cfg.TokenAccountID)
	if err != nil {
		return nil, apperror.ErrInvalidCredentials(fmt.Errorf("parse token account id: %w", err))
	}
	operatorKey, err := hedera.PrivateKeyFromStringECDSA(s.cfg.TokenPrivateKey)
	if err != nil {
		return nil, apperror.ErrInvalidCredentials(fmt.Errorf("parse token private key: %w", err))
	}

	client := hedera.ClientForTestnet()
	client.SetOperator(operatorID, operatorKey)
	defer func() {
		_ = client.Close()
	}()

	tx, err := hedera.NewTokenCreateTransaction().
		SetTokenType(hedera.TokenTypeFungibleCommon).
		SetTokenName(tokenName).
		SetTokenSymbol(tokenSymbol).
		SetDecimals(tokenDecimals).
		SetInitialSupply(tokenInitialSupply).
		SetTreasuryAccountID(operatorID).
		SetAdminKey(operatorKey.PublicKey()).
		SetFreezeDefault(false).
		FreezeWith(client)
	if err != nil {
		s.log.Error().Err(err).Msg("token creation freeze failed")
		return nil, apperror.ErrSubmission("Failed to create token", err)
	}

	resp, err := tx.Sign(operatorKey).Execute(client)
	if err != nil {
		s.log.Error().Err(err).Msg("token creation submission failed")
		return nil, apperror.ErrSubmission("Failed to create token", err)
	}

	receipt, err := resp.GetReceipt(client)
	if err != nil {
		s.log.Error().Err(err).Msg("token creation receipt failed")
		return nil, apperror.ErrReceipt(err)
	}
	if receipt.TokenID == nil {
		return nil, apperror.ErrMissingEntityID("token")
	}
	tokenID := receipt.TokenID.String()

	// Give the mirror node time to ingest the transaction before reading back.
	if err := sleepCtx(ctx, s.cfg.TokenPropagationDelay); err != nil {
		return nil, apperror.InternalError(err)
	}

	balance, err := s.mirror.TokenBalance(ctx, s.cfg.TokenAccountID, tokenID)
	if err != nil {
		s.log.Warn().Err(err).Str("token_id", tokenID).Msg("token balance not yet available on mirror node")
		balance = nil
	}

	s.log.Info().
		Str("token_id", tokenID).
		Str("treasury", operatorID.String()).
		Msg("token created")

	return &ports.TokenResult{
		AccountID:       operatorID.String(),
		TokenID:         tokenID,
		ExplorerURL:     fmt.Sprintf("%s/token/%s", s.cfg.ExplorerBaseURL, tokenID),
		Balance:         balance,
		BalanceFetchURL: s.mirror.TokenBalanceURL(s.cfg.TokenAccountID, tokenID),
	}, nil
}

// DeriveAccountDetails derives the HD-wallet identity from the configured
// seed phrase and looks up its balance on the mirror node. A failed mirror
// lookup degrades to a partial result with the balance fields absent.
func (s *LedgerServiceImpl) DeriveAccountDetails(ctx context.Context) (*ports.AccountDetails, error) {
	if s.cfg.SeedPhrase == "" {
		return nil, apperror.ErrMissingSeedPhrase()
	}

	key, err := hdwallet.Derive(s.cfg.SeedPhrase)
	if err != nil {
		return nil, apperror.ErrInvalidCredentials(fmt.Errorf("derive key from seed phrase: %w", err))
	}

	// Round-trip through the ledger's native ECDSA encoding; rejects key
	// material the SDK would not accept for signing.
	if _, err := hedera.PrivateKeyFromStringECDSA(key.RawHex()); err != nil {
		return nil, apperror.ErrInvalidCredentials(fmt.Errorf("convert derived key: %w", err))
	}

	evmAddress := key.EvmAddress()
	details := &ports.AccountDetails{
		PrivateKeyHex:   key.PrivateKeyHex(),
		EvmAddress:      evmAddress,
		ExplorerURL:     fmt.Sprintf("%s/account/%s", s.cfg.ExplorerBaseURL, evmAddress),
		BalanceFetchURL: s.mirror.BalanceURL(evmAddress),
	}

	entry, err := s.lookupBalance(ctx, evmAddress)
	if err != nil {
		s.log.Warn().Err(err).Str("evm_address", evmAddress).Msg("fetching account balance failed")
		return details, nil
	}
	if entry != nil {
		balanceHbar := FormatTinybar(entry.Balance)
		details.AccountID = &entry.AccountID
		details.BalanceTinybar = &entry.Balance
		details.BalanceHbar = &balanceHbar
	}

	s.log.Info().
		Str("evm_address", evmAddress).
		Msg("account details derived")

	return details, nil
}

// lookupBalance consults the optional cache before the mirror node.
func (s *LedgerServiceImpl) lookupBalance(ctx context.Context, account string) (*ports.MirrorAccountBalance, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, account)
		if err != nil {
			s.log.Warn().Err(err).Msg("balance cache read failed, falling through to mirror")
		} else if raw != nil {
			var entry ports.MirrorAccountBalance
			if err := json.Unmarshal(raw, &entry); err == nil {
				return &entry, nil
			}
		}
	}

	entry, err := s.mirror.AccountBalance(ctx, account)
	if err != nil {
		return nil, err
	}

	if entry != nil && s.cache != nil {
		if raw, err := json.Marshal(entry); err == nil {
			if err := s.cache.Set(ctx, account, raw, balanceCacheTTL); err != nil {
				s.log.Warn().Err(err).Msg("balance cache write failed")
			}
		}
	}
	return entry, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
