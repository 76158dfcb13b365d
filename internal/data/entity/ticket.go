package entity

type TicketType string

const (
	TicketTypeAdult  TicketType = "ADULT"
	TicketTypeChild  TicketType = "CHILD"
	TicketTypeInfant TicketType = "INFANT"
)

// MaxTicketsPerPurchase caps the summed ticket count of a single purchase
const MaxTicketsPerPurchase = 20

func ParseTicketType(s string) (TicketType, bool) {
	switch t := TicketType(s); t {
	case TicketTypeAdult, TicketTypeChild, TicketTypeInfant:
		return t, true
	default:
		return "", false
	}
}

// TicketTypeRequest is an immutable (type, count) pair.
// The zero value is not a genuine request, use NewTicketTypeRequest.
type TicketTypeRequest struct {
	ticketType  TicketType
	noOfTickets int
}

func NewTicketTypeRequest(ticketType TicketType, noOfTickets int) (TicketTypeRequest, error) {
	if _, ok := ParseTicketType(string(ticketType)); !ok || noOfTickets < 0 {
		return TicketTypeRequest{}, ErrRequestType
	}

	return TicketTypeRequest{ticketType: ticketType, noOfTickets: noOfTickets}, nil
}

func mustTicketTypeRequest(ticketType TicketType, noOfTickets int) TicketTypeRequest {
	req, err := NewTicketTypeRequest(ticketType, noOfTickets)
	if err != nil {
		panic(err)
	}
	return req
}

// Adults returns a request for n adult tickets. Panics if n is negative.
func Adults(n int) TicketTypeRequest { return mustTicketTypeRequest(TicketTypeAdult, n) }

// Children returns a request for n child tickets. Panics if n is negative.
func Children(n int) TicketTypeRequest { return mustTicketTypeRequest(TicketTypeChild, n) }

// Infants returns a request for n infant tickets. Panics if n is negative.
func Infants(n int) TicketTypeRequest { return mustTicketTypeRequest(TicketTypeInfant, n) }

func (r TicketTypeRequest) Type() TicketType {
	return r.ticketType
}

func (r TicketTypeRequest) NoOfTickets() int {
	return r.noOfTickets
}

// Valid reports whether r was built by one of the constructors
func (r TicketTypeRequest) Valid() bool {
	_, ok := ParseTicketType(string(r.ticketType))
	return ok && r.noOfTickets >= 0
}

type AccountID int64

func (id AccountID) Valid() bool {
	return id > 0
}

// AggregateCounts is built fresh for each purchase and never shared
type AggregateCounts struct {
	TotalTickets int
	TotalAdults  int
	TotalInfants int
}

func (a AggregateCounts) TotalChildren() int {
	return a.TotalTickets - a.TotalAdults - a.TotalInfants
}

type PurchaseOutcome struct {
	TotalCost  int
	TotalSeats int
}

// PriceList holds whole-unit prices. Infants are always free.
type PriceList struct {
	Adult int
	Child int
}

var DefaultPriceList = PriceList{
	Adult: 20,
	Child: 10,
}
