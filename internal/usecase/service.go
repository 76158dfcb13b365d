package usecase

import (
	"cinema-tickets/internal/data/repository"
	"cinema-tickets/internal/thirdparty/paymentgateway"
	"cinema-tickets/internal/thirdparty/seatbooking"
	"cinema-tickets/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Ticket TicketService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	payment := paymentgateway.NewTicketPaymentService(repo.TicketPayment, log)
	reservation := seatbooking.NewSeatReservationService(repo.SeatReservation, log)

	return &Service{
		Ticket: NewTicketService(payment, reservation, config.Ticket.PriceList(), log),
	}
}
