package usecase_test

import (
	"context"
	"encoding/json"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const oneAdult = `[{"type":"ADULT","count":1}]`

// raw turns "" into a missing field
func raw(s string) json.RawMessage {
	if s == "" {
		return nil
	}
	return json.RawMessage(s)
}

func purchaseRequest(accountID, ticketRequests string) *request.PurchaseRequest {
	return &request.PurchaseRequest{
		AccountID:      raw(accountID),
		TicketRequests: raw(ticketRequests),
	}
}

func (s *TicketServiceTestSuite) TestPurchasePayloadRejections() {
	tests := []struct {
		name           string
		accountID      string
		ticketRequests string
		wantErr        error
	}{
		// account id type
		{name: "string account id", accountID: `"a"`, ticketRequests: oneAdult, wantErr: entity.ErrInvalidAccountIDType},
		{name: "numeric string account id", accountID: `"1"`, ticketRequests: oneAdult, wantErr: entity.ErrInvalidAccountIDType},
		{name: "fractional account id", accountID: `1.5`, ticketRequests: oneAdult, wantErr: entity.ErrInvalidAccountIDType},
		{name: "boolean account id", accountID: `true`, ticketRequests: oneAdult, wantErr: entity.ErrInvalidAccountIDType},
		{name: "null account id", accountID: `null`, ticketRequests: oneAdult, wantErr: entity.ErrInvalidAccountIDType},
		{name: "missing account id", accountID: "", ticketRequests: oneAdult, wantErr: entity.ErrInvalidAccountIDType},
		{name: "array account id", accountID: `[1]`, ticketRequests: oneAdult, wantErr: entity.ErrInvalidAccountIDType},
		{name: "account id beyond int64", accountID: `1e30`, ticketRequests: oneAdult, wantErr: entity.ErrInvalidAccountIDType},
		{name: "account id type before bad requests", accountID: `"a"`, ticketRequests: `{}`, wantErr: entity.ErrInvalidAccountIDType},

		// account id value
		{name: "zero account id", accountID: `0`, ticketRequests: oneAdult, wantErr: entity.ErrInvalidAccountID},
		{name: "negative account id", accountID: `-1`, ticketRequests: oneAdult, wantErr: entity.ErrInvalidAccountID},
		{name: "negative account id before missing requests", accountID: `-1`, ticketRequests: "", wantErr: entity.ErrInvalidAccountID},
		{name: "zero account id before empty requests", accountID: `0`, ticketRequests: `[]`, wantErr: entity.ErrInvalidAccountID},

		// requests shape
		{name: "null requests", accountID: `1`, ticketRequests: `null`, wantErr: entity.ErrRequestsType},
		{name: "missing requests", accountID: `1`, ticketRequests: "", wantErr: entity.ErrRequestsType},
		{name: "single object instead of array", accountID: `1`, ticketRequests: `{"type":"ADULT","count":1}`, wantErr: entity.ErrRequestsType},
		{name: "string requests", accountID: `1`, ticketRequests: `"ADULT"`, wantErr: entity.ErrRequestsType},

		// element shape
		{name: "number element", accountID: `1`, ticketRequests: `[1]`, wantErr: entity.ErrRequestType},
		{name: "null element", accountID: `1`, ticketRequests: `[null]`, wantErr: entity.ErrRequestType},
		{name: "unknown type", accountID: `1`, ticketRequests: `[{"type":"SENIOR","count":1}]`, wantErr: entity.ErrRequestType},
		{name: "lowercase type", accountID: `1`, ticketRequests: `[{"type":"adult","count":1}]`, wantErr: entity.ErrRequestType},
		{name: "negative count", accountID: `1`, ticketRequests: `[{"type":"ADULT","count":-1}]`, wantErr: entity.ErrRequestType},
		{name: "fractional count", accountID: `1`, ticketRequests: `[{"type":"ADULT","count":1.5}]`, wantErr: entity.ErrRequestType},
		{name: "missing count", accountID: `1`, ticketRequests: `[{"type":"ADULT"}]`, wantErr: entity.ErrRequestType},
		{name: "null count", accountID: `1`, ticketRequests: `[{"type":"ADULT","count":null}]`, wantErr: entity.ErrRequestType},
		{name: "string count", accountID: `1`, ticketRequests: `[{"type":"ADULT","count":"2"}]`, wantErr: entity.ErrRequestType},
		{name: "count beyond int64", accountID: `1`, ticketRequests: `[{"type":"ADULT","count":1e30}]`, wantErr: entity.ErrRequestType},
		{name: "foreign field", accountID: `1`, ticketRequests: `[{"type":"ADULT","count":1,"seat":"A1"}]`, wantErr: entity.ErrRequestType},
		{
			name:           "bad element between good ones",
			accountID:      `1`,
			ticketRequests: `[{"type":"ADULT","count":1},"ADULT",{"type":"CHILD","count":30}]`,
			wantErr:        entity.ErrRequestType,
		},

		// business rules
		{name: "empty batch", accountID: `1`, ticketRequests: `[]`, wantErr: entity.ErrAdultNeeded},
		{
			name:           "infants outnumber adults",
			accountID:      `1`,
			ticketRequests: `[{"type":"INFANT","count":2},{"type":"ADULT","count":1}]`,
			wantErr:        entity.ErrAdultNeededForInfant,
		},
		{
			name:           "largest integer count",
			accountID:      `1`,
			ticketRequests: `[{"type":"ADULT","count":9223372036854775807}]`,
			wantErr:        entity.ErrMaxTicketsExceeded,
		},
		{
			name:           "excess reported before a later bad element",
			accountID:      `1`,
			ticketRequests: `[{"type":"CHILD","count":20},{"type":"ADULT","count":1},"garbage"]`,
			wantErr:        entity.ErrMaxTicketsExceeded,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			resp, err := s.service.Purchase(context.Background(), purchaseRequest(tt.accountID, tt.ticketRequests))

			s.Nil(resp)
			s.ErrorIs(err, tt.wantErr)
			s.payment.AssertNotCalled(s.T(), "MakePayment", mock.Anything, mock.Anything, mock.Anything)
			s.reservation.AssertNotCalled(s.T(), "ReserveSeat", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func (s *TicketServiceTestSuite) TestPurchasePayloadSuccess() {
	tests := []struct {
		name           string
		accountID      string
		ticketRequests string
		wantAccountID  entity.AccountID
		wantCost       int
		wantSeats      int
	}{
		{
			name:           "integer account id",
			accountID:      `1`,
			ticketRequests: oneAdult,
			wantAccountID:  1,
			wantCost:       adultPrice,
			wantSeats:      1,
		},
		{
			name:           "whole float account id",
			accountID:      `12.0`,
			ticketRequests: oneAdult,
			wantAccountID:  12,
			wantCost:       adultPrice,
			wantSeats:      1,
		},
		{
			name:           "exponent account id",
			accountID:      `1e3`,
			ticketRequests: oneAdult,
			wantAccountID:  1000,
			wantCost:       adultPrice,
			wantSeats:      1,
		},
		{
			name:           "whole float count",
			accountID:      `1.0`,
			ticketRequests: `[{"type":"ADULT","count":2.0},{"type":"CHILD","count":1e0}]`,
			wantAccountID:  1,
			wantCost:       2*adultPrice + childPrice,
			wantSeats:      3,
		},
		{
			name:           "family",
			accountID:      `1`,
			ticketRequests: `[{"type":"CHILD","count":1},{"type":"INFANT","count":2},{"type":"ADULT","count":1},{"type":"ADULT","count":1}]`,
			wantAccountID:  1,
			wantCost:       2*adultPrice + childPrice,
			wantSeats:      3,
		},
		{
			name:           "zero counts are allowed",
			accountID:      `5`,
			ticketRequests: `[{"type":"CHILD","count":0},{"type":"ADULT","count":1}]`,
			wantAccountID:  5,
			wantCost:       adultPrice,
			wantSeats:      1,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			s.payment.On("MakePayment", mock.Anything, tt.wantAccountID, tt.wantCost).Return(nil).Once()
			s.reservation.On("ReserveSeat", mock.Anything, tt.wantAccountID, tt.wantSeats).Return(nil).Once()

			resp, err := s.service.Purchase(context.Background(), purchaseRequest(tt.accountID, tt.ticketRequests))

			s.Require().NoError(err)
			s.Equal(int64(tt.wantAccountID), resp.AccountID)
			s.Equal(tt.wantCost, resp.TotalCost)
			s.Equal(tt.wantSeats, resp.TotalSeats)

			_, parseErr := uuid.Parse(resp.PurchaseID)
			s.NoError(parseErr)

			s.payment.AssertExpectations(s.T())
			s.reservation.AssertExpectations(s.T())
		})
	}
}

func (s *TicketServiceTestSuite) TestPurchaseLogsWhyAnElementWasRejected() {
	core, logs := observer.New(zapcore.WarnLevel)
	service := usecase.NewTicketService(s.payment, s.reservation, entity.DefaultPriceList, zap.New(core))

	_, err := service.Purchase(context.Background(), purchaseRequest(`1`, `[{"type":"SENIOR"}]`))
	s.Require().ErrorIs(err, entity.ErrRequestType)

	entries := logs.FilterMessage("Purchase rejected").All()
	s.Require().Len(entries, 1)

	fields := entries[0].ContextMap()
	s.Equal(string(entity.ReasonRequestType), fields["reason"])
	s.Contains(fields["error"], "Type: Must be one of: ADULT, CHILD, INFANT")
	s.Contains(fields["error"], "Count: This field is required")
}
