package paymentgateway_test

import (
	"context"
	"errors"
	"testing"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/mocks"
	"cinema-tickets/internal/thirdparty/paymentgateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"
)

func TestMakePayment(t *testing.T) {
	errDB := errors.New("connection reset")

	tests := []struct {
		name      string
		accountID entity.AccountID
		amount    int
		setupMock func(repo *mocks.MockTicketPaymentRepo)
		wantErr   error
	}{
		{
			name:      "should record the payment",
			accountID: 9,
			amount:    50,
			setupMock: func(repo *mocks.MockTicketPaymentRepo) {
				repo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.TicketPayment) bool {
					return p.AccountID == 9 && p.Amount == 50 && p.Status == entity.PaymentStatusCompleted
				})).Return(nil).Once()
			},
		},
		{
			name:      "should accept a zero amount",
			accountID: 9,
			amount:    0,
			setupMock: func(repo *mocks.MockTicketPaymentRepo) {
				repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:      "should reject a non-positive account",
			accountID: 0,
			amount:    10,
			wantErr:   paymentgateway.ErrInvalidAccount,
		},
		{
			name:      "should reject a negative amount",
			accountID: 1,
			amount:    -10,
			wantErr:   paymentgateway.ErrInvalidAmount,
		},
		{
			name:      "should wrap ledger failures",
			accountID: 1,
			amount:    20,
			setupMock: func(repo *mocks.MockTicketPaymentRepo) {
				repo.On("Create", mock.Anything, mock.Anything).Return(errDB).Once()
			},
			wantErr: errDB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockTicketPaymentRepo)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			service := paymentgateway.NewTicketPaymentService(repo, zaptest.NewLogger(t))
			err := service.MakePayment(context.Background(), tt.accountID, tt.amount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}
