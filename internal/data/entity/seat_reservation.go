package entity

import (
	"time"

	"github.com/google/uuid"
)

// SeatReservation is one block of seats held by the seat booking service
type SeatReservation struct {
	LedgerBase
	AccountID AccountID `db:"account_id"`
	SeatCount int       `db:"seat_count"`
}

func NewSeatReservation(accountID AccountID, seatCount int) *SeatReservation {
	return &SeatReservation{
		LedgerBase: LedgerBase{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		AccountID: accountID,
		SeatCount: seatCount,
	}
}
