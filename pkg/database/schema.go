package database

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS ticket_payments (
		id UUID PRIMARY KEY,
		account_id BIGINT NOT NULL CHECK (account_id > 0),
		amount INTEGER NOT NULL CHECK (amount >= 0),
		status VARCHAR(20) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ticket_payments_account ON ticket_payments (account_id)`,
	`CREATE TABLE IF NOT EXISTS seat_reservations (
		id UUID PRIMARY KEY,
		account_id BIGINT NOT NULL CHECK (account_id > 0),
		seat_count INTEGER NOT NULL CHECK (seat_count >= 0),
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_seat_reservations_account ON seat_reservations (account_id)`,
}

// EnsureSchema creates the ledger tables if they are missing
func EnsureSchema(ctx context.Context, db PgxIface) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
