package ports

import (
	"context"

	"github.com/Bamzhie/hedera/internal/core/domain"
)

// AccountRepository defines persistence operations for minted ledger accounts.
type AccountRepository interface {
	// Save inserts one account row. No dedup, no update path.
	Save(ctx context.Context, account *domain.StoredAccount) error
	// FindMostRecent returns the account with the latest creation timestamp,
	// or nil if the store is empty.
	FindMostRecent(ctx context.Context) (*domain.StoredAccount, error)
}
