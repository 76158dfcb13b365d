package mocks

import (
	"context"

	"cinema-tickets/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) MakePayment(ctx context.Context, accountID entity.AccountID, amount int) error {
	args := m.Called(ctx, accountID, amount)
	return args.Error(0)
}

type MockSeatReservationGateway struct {
	mock.Mock
}

func (m *MockSeatReservationGateway) ReserveSeat(ctx context.Context, accountID entity.AccountID, seatCount int) error {
	args := m.Called(ctx, accountID, seatCount)
	return args.Error(0)
}
