package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bamzhie/hedera/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Save inserts a new minted account into the database.
func (r *AccountRepo) Save(ctx context.Context, a *domain.StoredAccount) error {
	query := `INSERT INTO account_details (id, account_id, private_key, public_key, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.AccountID, a.PrivateKey, a.PublicKey, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// FindMostRecent fetches the most recently created account, the one a
// transfer pays. Returns nil, nil when the table is empty.
func (r *AccountRepo) FindMostRecent(ctx context.Context) (*domain.StoredAccount, error) {
	query := `SELECT id, account_id, private_key, public_key, created_at
		FROM account_details ORDER BY created_at DESC LIMIT 1`

	a := &domain.StoredAccount{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&a.ID, &a.AccountID, &a.PrivateKey, &a.PublicKey, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find most recent account: %w", err)
	}
	return a, nil
}
