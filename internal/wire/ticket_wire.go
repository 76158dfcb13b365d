package wire

import (
	"cinema-tickets/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTicket(r chi.Router, ticketHandler *adaptor.TicketHandler) {
	r.Route("/api/tickets", func(r chi.Router) {
		// POST /api/tickets/purchase - validate, price, pay and reserve
		r.Post("/purchase", ticketHandler.PurchaseTickets)
	})
}
