package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PurchasesCompleted counts purchases that were paid for and seated
	PurchasesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tickets",
			Name:      "purchases_completed_total",
			Help:      "The total number of completed ticket purchases",
		},
	)

	// PurchasesRejected counts purchases refused by validation, by reason
	PurchasesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickets",
			Name:      "purchases_rejected_total",
			Help:      "The total number of rejected ticket purchases",
		},
		[]string{"reason"},
	)

	// CollaboratorFailures counts errors returned by payment or seat reservation
	CollaboratorFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickets",
			Name:      "collaborator_failures_total",
			Help:      "The total number of payment and seat reservation failures",
		},
		[]string{"collaborator"},
	)

	// TicketsSold counts tickets in completed purchases, by ticket type
	TicketsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickets",
			Name:      "sold_total",
			Help:      "The total number of tickets sold",
		},
		[]string{"type"},
	)
)

const (
	CollaboratorPayment     = "payment"
	CollaboratorReservation = "seat_reservation"
)
