package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/dto/request"
	"cinema-tickets/pkg/utils"
)

// parseWholeNumber accepts any integral JSON number within int64, including
// 1.0 and 1e3. Strings, booleans, null and fractions are rejected.
func parseWholeNumber(raw json.RawMessage) (int64, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return 0, false
	}

	number, ok := value.(json.Number)
	if !ok {
		return 0, false
	}

	if n, err := number.Int64(); err == nil {
		return n, true
	}

	f, err := number.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}

	return int64(f), true
}

func parseAccountID(raw json.RawMessage) (entity.AccountID, error) {
	id, ok := parseWholeNumber(raw)
	if !ok {
		return 0, entity.ErrInvalidAccountIDType
	}
	return entity.AccountID(id), nil
}

func validateAccountID(accountID entity.AccountID) error {
	if !accountID.Valid() {
		return entity.ErrInvalidAccountID
	}
	return nil
}

// parseTicketRequests only checks that raw is a JSON array. Elements are
// decoded lazily while the aggregate is folded.
func parseTicketRequests(raw json.RawMessage) (ticketRequests, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil || elements == nil {
		return nil, entity.ErrRequestsType
	}

	return func(yield func(entity.TicketTypeRequest, error) bool) {
		for _, element := range elements {
			if !yield(decodeTicketRequest(element)) {
				return
			}
		}
	}, nil
}

// decodeTicketRequest wraps ErrRequestType with what was wrong with the element
func decodeTicketRequest(raw json.RawMessage) (entity.TicketTypeRequest, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var payload request.TicketRequest
	if err := dec.Decode(&payload); err != nil {
		return entity.TicketTypeRequest{}, fmt.Errorf("%w: %v", entity.ErrRequestType, err)
	}

	if errs := utils.ValidateStruct(payload); len(errs) > 0 {
		return entity.TicketTypeRequest{}, fmt.Errorf("%w: %s", entity.ErrRequestType, utils.FormatValidationErrors(errs))
	}

	count, ok := parseWholeNumber(payload.Count)
	if !ok {
		return entity.TicketTypeRequest{}, fmt.Errorf("%w: count: must be a whole number", entity.ErrRequestType)
	}

	// anything this large already breaks the ticket cap
	if count > math.MaxInt {
		count = math.MaxInt
	}

	ticketType, _ := entity.ParseTicketType(payload.Type)
	return entity.NewTicketTypeRequest(ticketType, int(count))
}
