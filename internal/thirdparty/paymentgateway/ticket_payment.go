// Package paymentgateway charges accounts for ticket purchases and records
// each charge in the payment ledger.
package paymentgateway

import (
	"context"
	"errors"
	"fmt"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/repository"

	"go.uber.org/zap"
)

var (
	ErrInvalidAccount = errors.New("payment gateway: account id must be positive")
	ErrInvalidAmount  = errors.New("payment gateway: amount must not be negative")
)

type TicketPaymentService struct {
	repo repository.TicketPaymentRepository
	log  *zap.Logger
}

func NewTicketPaymentService(repo repository.TicketPaymentRepository, log *zap.Logger) *TicketPaymentService {
	return &TicketPaymentService{
		repo: repo,
		log:  log.With(zap.String("gateway", "payment")),
	}
}

func (s *TicketPaymentService) MakePayment(ctx context.Context, accountID entity.AccountID, amount int) error {
	if !accountID.Valid() {
		return ErrInvalidAccount
	}
	if amount < 0 {
		return ErrInvalidAmount
	}

	payment := entity.NewTicketPayment(accountID, amount)
	if err := s.repo.Create(ctx, payment); err != nil {
		return fmt.Errorf("make payment: %w", err)
	}

	s.log.Info("Payment taken",
		zap.String("payment_id", payment.ID.String()),
		zap.Int64("account_id", int64(accountID)),
		zap.Int("amount", amount),
	)

	return nil
}
