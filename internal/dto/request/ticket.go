package request

import "encoding/json"

// PurchaseRequest keeps both fields raw so that their shape can be checked
// in a fixed order: account id first, ticket requests second.
type PurchaseRequest struct {
	AccountID      json.RawMessage `json:"account_id"`
	TicketRequests json.RawMessage `json:"ticket_requests"`
}

// TicketRequest is one element of ticket_requests. Count stays raw so that
// whole floats such as 2.0 are read the same way as the account id.
type TicketRequest struct {
	Type  string          `json:"type" validate:"required,oneof=ADULT CHILD INFANT"`
	Count json.RawMessage `json:"count" validate:"required"`
}
