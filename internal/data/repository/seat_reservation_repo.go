package repository

import (
	"context"
	"fmt"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/pkg/database"

	"go.uber.org/zap"
)

type SeatReservationRepository interface {
	Create(ctx context.Context, reservation *entity.SeatReservation) error
}

type seatReservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatReservationRepository(db database.PgxIface, log *zap.Logger) SeatReservationRepository {
	return &seatReservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat_reservation")),
	}
}

func (r *seatReservationRepository) Create(ctx context.Context, reservation *entity.SeatReservation) error {
	query := `
		INSERT INTO seat_reservations (id, account_id, seat_count, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		int64(reservation.AccountID),
		reservation.SeatCount,
		reservation.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create seat reservation",
			zap.Error(err),
			zap.Int64("account_id", int64(reservation.AccountID)),
			zap.Int("seat_count", reservation.SeatCount),
		)
		return fmt.Errorf("create seat reservation for account %d: %w", reservation.AccountID, err)
	}

	return nil
}
