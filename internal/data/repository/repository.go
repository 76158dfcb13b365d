package repository

import (
	"cinema-tickets/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	TicketPayment   TicketPaymentRepository
	SeatReservation SeatReservationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		TicketPayment:   NewTicketPaymentRepository(db, log),
		SeatReservation: NewSeatReservationRepository(db, log),
	}
}
