package entity

import "errors"

type PurchaseFailureReason string

const (
	ReasonInvalidAccountIDType PurchaseFailureReason = "INVALID_ACCOUNT_ID_TYPE"
	ReasonInvalidAccountID     PurchaseFailureReason = "INVALID_ACCOUNT_ID"
	ReasonRequestsType         PurchaseFailureReason = "REQUESTS_TYPE_ERROR"
	ReasonRequestType          PurchaseFailureReason = "REQUEST_TYPE_ERROR"
	ReasonMaxTicketsExceeded   PurchaseFailureReason = "MAX_TICKETS_EXCEEDED"
	ReasonAdultNeeded          PurchaseFailureReason = "ADULT_NEEDED"
	ReasonAdultNeededForInfant PurchaseFailureReason = "ADULT_NEEDED_FOR_INFANT"
)

var reasonMessages = map[PurchaseFailureReason]string{
	ReasonInvalidAccountIDType: "accountId must be an integer",
	ReasonInvalidAccountID:     "accountId must be greater than zero",
	ReasonRequestsType:         "Entry is not a TicketTypeRequest array",
	ReasonRequestType:          "Entry is not a TicketTypeRequest instance",
	ReasonMaxTicketsExceeded:   "Only a maximum of 20 tickets can be purchased at one time",
	ReasonAdultNeeded:          "At least one Adult must be in attendance",
	ReasonAdultNeededForInfant: "Each Infant must be attended by an Adult",
}

func (r PurchaseFailureReason) Message() string {
	if msg, ok := reasonMessages[r]; ok {
		return msg
	}
	return string(r)
}

// InvalidPurchaseError is the single failure kind of a purchase
type InvalidPurchaseError struct {
	reason PurchaseFailureReason
}

func (e *InvalidPurchaseError) Reason() PurchaseFailureReason {
	return e.reason
}

func (e *InvalidPurchaseError) Error() string {
	return e.reason.Message()
}

var (
	ErrInvalidAccountIDType = &InvalidPurchaseError{reason: ReasonInvalidAccountIDType}
	ErrInvalidAccountID     = &InvalidPurchaseError{reason: ReasonInvalidAccountID}
	ErrRequestsType         = &InvalidPurchaseError{reason: ReasonRequestsType}
	ErrRequestType          = &InvalidPurchaseError{reason: ReasonRequestType}
	ErrMaxTicketsExceeded   = &InvalidPurchaseError{reason: ReasonMaxTicketsExceeded}
	ErrAdultNeeded          = &InvalidPurchaseError{reason: ReasonAdultNeeded}
	ErrAdultNeededForInfant = &InvalidPurchaseError{reason: ReasonAdultNeededForInfant}
)

// ReasonOf extracts the failure reason from err, if any
func ReasonOf(err error) (PurchaseFailureReason, bool) {
	var purchaseErr *InvalidPurchaseError
	if errors.As(err, &purchaseErr) {
		return purchaseErr.Reason(), true
	}
	return "", false
}
