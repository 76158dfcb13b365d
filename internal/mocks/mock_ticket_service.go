package mocks

import (
	"context"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/dto/response"
	"cinema-tickets/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockTicketService struct {
	mock.Mock
	usecase.TicketService
}

func (m *MockTicketService) Purchase(ctx context.Context, req *request.PurchaseRequest) (*response.PurchaseResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PurchaseResponse), args.Error(1)
}

func (m *MockTicketService) PurchaseTickets(ctx context.Context, accountID entity.AccountID, requests ...entity.TicketTypeRequest) (*entity.PurchaseOutcome, error) {
	args := m.Called(ctx, accountID, requests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PurchaseOutcome), args.Error(1)
}
