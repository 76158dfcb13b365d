package entity

import (
	"time"

	"github.com/google/uuid"
)

// LedgerBase is shared by the append-only collaborator ledgers
type LedgerBase struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
