package ports

import (
	"context"
	"time"
)

// LedgerService translates high-level intents into ledger SDK call sequences.
// Configuration absence is fatal and surfaced as an *apperror.AppError;
// read-only balance lookups degrade instead of failing (see QueryBalance and
// DeriveAccountDetails). No operation retries; every external call is
// attempted exactly once.
type LedgerService interface {
	// CreateAccount mints a funded ledger account, persists its keypair and
	// returns the identity triple.
	CreateAccount(ctx context.Context) (*NewAccount, error)

	// TransferHbar pays the fixed amount from the operator to the most
	// recently minted stored account.
	TransferHbar(ctx context.Context) (*TransferResult, error)

	// QueryBalance returns the balance and query cost for accountID. Failures
	// are normalized into a {status:"error"} result, never an error return.
	QueryBalance(ctx context.Context, accountID string) *BalanceResult

	// CreateToken mints the fungible token under the token operator identity.
	CreateToken(ctx context.Context) (*TokenResult, error)

	// DeriveAccountDetails derives the HD-wallet identity from the configured
	// seed phrase and looks up its balance on the mirror node. Mirror failures
	// yield a partial result with the balance fields absent.
	DeriveAccountDetails(ctx context.Context) (*AccountDetails, error)
}

// NewAccount is the identity triple of a freshly minted account.
type NewAccount struct {
	AccountID  string `json:"accountId"`
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
}

// TransferResult reports a completed transfer submission.
type TransferResult struct {
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
}

// BalanceResult is the always-shaped outcome of a balance query.
// On success Status is empty and Balance/QueryCost are set; on failure
// Status is "error" and Message carries the cause.
type BalanceResult struct {
	Status    string `json:"status,omitempty"`
	Message   string `json:"message,omitempty"`
	Balance   *int64 `json:"balance,omitempty"` // tinybar
	QueryCost string `json:"queryCost,omitempty"`
}

// TokenResult reports a completed token creation.
// Balance is nil when the mirror node has not yet ingested the transaction.
type TokenResult struct {
	AccountID       string `json:"accountId"`
	TokenID         string `json:"tokenId"`
	ExplorerURL     string `json:"tokenExplorerUrl"`
	Balance         *int64 `json:"accountBalanceToken,omitempty"`
	BalanceFetchURL string `json:"accountBalanceFetchApiUrl"`
}

// AccountDetails is the derived HD-wallet identity plus its mirror balance.
// The balance fields are absent when the mirror lookup fails or the address
// has no entries yet (partial-success policy).
type AccountDetails struct {
	PrivateKeyHex   string  `json:"privateKeyHex"`
	EvmAddress      string  `json:"evmAddress"`
	ExplorerURL     string  `json:"accountExplorerUrl"`
	BalanceFetchURL string  `json:"accountBalanceFetchApiUrl"`
	AccountID       *string `json:"accountId,omitempty"`
	BalanceTinybar  *int64  `json:"accountBalanceTinybar,omitempty"`
	BalanceHbar     *string `json:"accountBalanceHbar,omitempty"`
}

// MirrorAccountBalance is one balance entry from the mirror node.
type MirrorAccountBalance struct {
	AccountID string `json:"account"`
	Balance   int64  `json:"balance"` // tinybar
}

// MirrorClient reads eventually-consistent ledger state from the
// mirror/indexing HTTP API.
type MirrorClient interface {
	// AccountBalance looks up the balance entry for an account or EVM address.
	// Returns nil, nil when the mirror has no entry yet.
	AccountBalance(ctx context.Context, account string) (*MirrorAccountBalance, error)
	// TokenBalance looks up the balance an account holds for one token.
	// Returns nil, nil when the mirror has no entry yet.
	TokenBalance(ctx context.Context, accountID, tokenID string) (*int64, error)
	// BalanceURL returns the public lookup URL included in API responses.
	BalanceURL(account string) string
	// TokenBalanceURL returns the public token lookup URL included in API responses.
	TokenBalanceURL(accountID, tokenID string) string
}

// BalanceCache is an optional short-TTL cache in front of mirror lookups.
type BalanceCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil, nil on miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
