package repository

import (
	"context"
	"fmt"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/pkg/database"

	"go.uber.org/zap"
)

type TicketPaymentRepository interface {
	Create(ctx context.Context, payment *entity.TicketPayment) error
}

type ticketPaymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketPaymentRepository(db database.PgxIface, log *zap.Logger) TicketPaymentRepository {
	return &ticketPaymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket_payment")),
	}
}

func (r *ticketPaymentRepository) Create(ctx context.Context, payment *entity.TicketPayment) error {
	query := `
		INSERT INTO ticket_payments (id, account_id, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		int64(payment.AccountID),
		payment.Amount,
		string(payment.Status),
		payment.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create ticket payment",
			zap.Error(err),
			zap.Int64("account_id", int64(payment.AccountID)),
			zap.Int("amount", payment.Amount),
		)
		return fmt.Errorf("create ticket payment for account %d: %w", payment.AccountID, err)
	}

	return nil
}
