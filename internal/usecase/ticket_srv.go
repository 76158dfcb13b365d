package usecase

import (
	"context"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/dto/response"
	"cinema-tickets/pkg/metrics"
	"cinema-tickets/pkg/utils"

	"go.uber.org/zap"
)

// PaymentGateway charges an account. Errors are treated as fatal for the purchase.
type PaymentGateway interface {
	MakePayment(ctx context.Context, accountID entity.AccountID, amount int) error
}

// SeatReservationGateway holds seats for an account. Errors are treated as fatal for the purchase.
type SeatReservationGateway interface {
	ReserveSeat(ctx context.Context, accountID entity.AccountID, seatCount int) error
}

type TicketService interface {
	// PurchaseTickets validates and prices the requests, then pays and reserves seats
	PurchaseTickets(ctx context.Context, accountID entity.AccountID, requests ...entity.TicketTypeRequest) (*entity.PurchaseOutcome, error)

	// Purchase does the same for an undecoded JSON payload
	Purchase(ctx context.Context, req *request.PurchaseRequest) (*response.PurchaseResponse, error)
}

type ticketService struct {
	payment     PaymentGateway
	reservation SeatReservationGateway
	prices      entity.PriceList
	log         *zap.Logger
}

func NewTicketService(payment PaymentGateway, reservation SeatReservationGateway, prices entity.PriceList, log *zap.Logger) TicketService {
	return &ticketService{
		payment:     payment,
		reservation: reservation,
		prices:      prices,
		log:         log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) PurchaseTickets(ctx context.Context, accountID entity.AccountID, requests ...entity.TicketTypeRequest) (*entity.PurchaseOutcome, error) {
	log := s.log.With(zap.String("purchase_id", utils.GenerateUUIDString()))

	if err := validateAccountID(accountID); err != nil {
		return nil, reject(log, err, zap.Int64("account_id", int64(accountID)))
	}

	return s.purchase(ctx, log, accountID, requestsOf(requests))
}

func (s *ticketService) Purchase(ctx context.Context, req *request.PurchaseRequest) (*response.PurchaseResponse, error) {
	purchaseID := utils.GenerateUUIDString()
	log := s.log.With(zap.String("purchase_id", purchaseID))

	accountID, err := parseAccountID(req.AccountID)
	if err != nil {
		return nil, reject(log, err, zap.ByteString("account_id", req.AccountID))
	}

	if err := validateAccountID(accountID); err != nil {
		return nil, reject(log, err, zap.Int64("account_id", int64(accountID)))
	}

	requests, err := parseTicketRequests(req.TicketRequests)
	if err != nil {
		return nil, reject(log, err, zap.Int64("account_id", int64(accountID)))
	}

	outcome, err := s.purchase(ctx, log, accountID, requests)
	if err != nil {
		return nil, err
	}

	resp := response.PurchaseToResponse(purchaseID, accountID, outcome)
	return &resp, nil
}

// purchase runs everything after the account id check. accountID must already be valid.
func (s *ticketService) purchase(ctx context.Context, log *zap.Logger, accountID entity.AccountID, requests ticketRequests) (*entity.PurchaseOutcome, error) {
	log = log.With(zap.Int64("account_id", int64(accountID)))

	counts, err := aggregateRequests(requests)
	if err != nil {
		return nil, reject(log, err)
	}

	if err := validateCounts(counts); err != nil {
		return nil, reject(log, err,
			zap.Int("adults", counts.TotalAdults),
			zap.Int("infants", counts.TotalInfants),
		)
	}

	outcome := &entity.PurchaseOutcome{
		TotalCost:  calculateCost(counts, s.prices),
		TotalSeats: calculateSeats(counts),
	}

	if err := s.payment.MakePayment(ctx, accountID, outcome.TotalCost); err != nil {
		log.Error("Payment failed", zap.Error(err), zap.Int("total_cost", outcome.TotalCost))
		metrics.CollaboratorFailures.WithLabelValues(metrics.CollaboratorPayment).Inc()
		return nil, err
	}

	if err := s.reservation.ReserveSeat(ctx, accountID, outcome.TotalSeats); err != nil {
		log.Error("Seat reservation failed", zap.Error(err), zap.Int("total_seats", outcome.TotalSeats))
		metrics.CollaboratorFailures.WithLabelValues(metrics.CollaboratorReservation).Inc()
		return nil, err
	}

	log.Info("Tickets purchased",
		zap.Int("tickets", counts.TotalTickets),
		zap.Int("total_cost", outcome.TotalCost),
		zap.Int("total_seats", outcome.TotalSeats),
	)

	metrics.PurchasesCompleted.Inc()
	metrics.TicketsSold.WithLabelValues(string(entity.TicketTypeAdult)).Add(float64(counts.TotalAdults))
	metrics.TicketsSold.WithLabelValues(string(entity.TicketTypeChild)).Add(float64(counts.TotalChildren()))
	metrics.TicketsSold.WithLabelValues(string(entity.TicketTypeInfant)).Add(float64(counts.TotalInfants))

	return outcome, nil
}

// validateCounts checks adult presence before the infant ratio
func validateCounts(counts entity.AggregateCounts) error {
	if counts.TotalAdults < 1 {
		return entity.ErrAdultNeeded
	}

	// infants sit on an adult's lap
	if counts.TotalAdults < counts.TotalInfants {
		return entity.ErrAdultNeededForInfant
	}

	return nil
}

func calculateCost(counts entity.AggregateCounts, prices entity.PriceList) int {
	return counts.TotalAdults*prices.Adult + counts.TotalChildren()*prices.Child
}

func calculateSeats(counts entity.AggregateCounts) int {
	return counts.TotalTickets - counts.TotalInfants
}

func reject(log *zap.Logger, err error, fields ...zap.Field) error {
	reason, _ := entity.ReasonOf(err)
	log.Warn("Purchase rejected", append(fields, zap.String("reason", string(reason)), zap.Error(err))...)
	metrics.PurchasesRejected.WithLabelValues(string(reason)).Inc()
	return err
}
