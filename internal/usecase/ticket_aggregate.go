package usecase

import (
	"iter"

	"cinema-tickets/internal/data/entity"
)

// ticketRequests yields requests in caller order. A non-nil error ends the fold.
type ticketRequests = iter.Seq2[entity.TicketTypeRequest, error]

func requestsOf(requests []entity.TicketTypeRequest) ticketRequests {
	return func(yield func(entity.TicketTypeRequest, error) bool) {
		for _, req := range requests {
			if !yield(req, nil) {
				return
			}
		}
	}
}

// aggregateRequests folds requests into per-type counts. The ticket limit is
// checked after every element, so later elements are never pulled once it is
// exceeded.
func aggregateRequests(requests ticketRequests) (entity.AggregateCounts, error) {
	var counts entity.AggregateCounts

	for req, err := range requests {
		if err != nil {
			return entity.AggregateCounts{}, err
		}

		if !req.Valid() {
			return entity.AggregateCounts{}, entity.ErrRequestType
		}

		noOfTickets := req.NoOfTickets()

		// compared before adding so a huge count cannot overflow the total
		if noOfTickets > entity.MaxTicketsPerPurchase-counts.TotalTickets {
			return entity.AggregateCounts{}, entity.ErrMaxTicketsExceeded
		}

		switch req.Type() {
		case entity.TicketTypeAdult:
			counts.TotalAdults += noOfTickets
		case entity.TicketTypeInfant:
			counts.TotalInfants += noOfTickets
		}

		counts.TotalTickets += noOfTickets
	}

	return counts, nil
}
