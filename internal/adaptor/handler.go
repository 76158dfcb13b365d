package adaptor

import (
	"cinema-tickets/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Ticket *TicketHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Ticket: NewTicketHandler(service.Ticket, log),
	}
}
