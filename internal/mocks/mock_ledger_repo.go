package mocks

import (
	"context"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/repository"

	"github.com/stretchr/testify/mock"
)

type MockTicketPaymentRepo struct {
	mock.Mock
	repository.TicketPaymentRepository
}

func (m *MockTicketPaymentRepo) Create(ctx context.Context, payment *entity.TicketPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

type MockSeatReservationRepo struct {
	mock.Mock
	repository.SeatReservationRepository
}

func (m *MockSeatReservationRepo) Create(ctx context.Context, reservation *entity.SeatReservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}
