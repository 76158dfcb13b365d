package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
)

// TicketPayment is one charge recorded by the payment gateway
type TicketPayment struct {
	LedgerBase
	AccountID AccountID     `db:"account_id"`
	Amount    int           `db:"amount"`
	Status    PaymentStatus `db:"status"`
}

func NewTicketPayment(accountID AccountID, amount int) *TicketPayment {
	return &TicketPayment{
		LedgerBase: LedgerBase{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		AccountID: accountID,
		Amount:    amount,
		Status:    PaymentStatusCompleted,
	}
}
