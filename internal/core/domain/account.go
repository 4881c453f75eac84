package domain

import (
	"time"

	"github.com/google/uuid"
)

// StoredAccount is one ledger account minted by this service, persisted so a
// later transfer can pay the most recently created account.
//
// Rows are insert-only: never updated, never deleted.
type StoredAccount struct {
	ID         uuid.UUID `json:"id"`
	AccountID  string    `json:"account_id"`  // ledger-assigned, e.g. "0.0.12345"
	PrivateKey string    `json:"-"`           // sensitive, never expose
	PublicKey  string    `json:"public_key"`
	CreatedAt  time.Time `json:"created_at"`
}
