// Package seatbooking holds seats for ticket purchases and records each
// reservation in the reservation ledger.
package seatbooking

import (
	"context"
	"errors"
	"fmt"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/repository"

	"go.uber.org/zap"
)

var (
	ErrInvalidAccount   = errors.New("seat booking: account id must be positive")
	ErrInvalidSeatCount = errors.New("seat booking: seat count must not be negative")
)

type SeatReservationService struct {
	repo repository.SeatReservationRepository
	log  *zap.Logger
}

func NewSeatReservationService(repo repository.SeatReservationRepository, log *zap.Logger) *SeatReservationService {
	return &SeatReservationService{
		repo: repo,
		log:  log.With(zap.String("gateway", "seat_booking")),
	}
}

func (s *SeatReservationService) ReserveSeat(ctx context.Context, accountID entity.AccountID, seatCount int) error {
	if !accountID.Valid() {
		return ErrInvalidAccount
	}
	if seatCount < 0 {
		return ErrInvalidSeatCount
	}

	reservation := entity.NewSeatReservation(accountID, seatCount)
	if err := s.repo.Create(ctx, reservation); err != nil {
		return fmt.Errorf("reserve seat: %w", err)
	}

	s.log.Info("Seats reserved",
		zap.String("reservation_id", reservation.ID.String()),
		zap.Int64("account_id", int64(accountID)),
		zap.Int("seat_count", seatCount),
	)

	return nil
}
