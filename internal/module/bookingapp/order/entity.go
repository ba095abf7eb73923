package order

import (
	"time"

	"github.com/marhaba-park/mp-booking/internal/module/bookingapp/catalog"
)

// Ticket is one priced admission. The policy fields are copied from the
// catalog when the ticket is built; later catalog changes do not touch sold
// tickets.
type Ticket struct {
	TicketID          int64        `json:"ticket_id"`
	Price             float64      `json:"price"`
	VisitDate         string       `json:"visit_date"`
	Type              catalog.Type `json:"type"`
	Description       string       `json:"description"`
	Limitations       string       `json:"limitations"`
	Validity          string       `json:"validity"`
	DiscountAvailable string       `json:"discount"`
}

// NewTicket snapshots the catalog policy for t into a ticket. price is the
// base price; the group-lot multiplier is applied on read, not stored.
func NewTicket(ticketID int64, price float64, visitDate string, t catalog.Type) (Ticket, error) {
	policy, err := catalog.PolicyFor(t)
	if err != nil {
		return Ticket{}, err
	}

	return Ticket{
		TicketID:          ticketID,
		Price:             price,
		VisitDate:         visitDate,
		Type:              t,
		Description:       policy.Description,
		Limitations:       policy.Limitations,
		Validity:          policy.Validity,
		DiscountAvailable: policy.DiscountAvailable,
	}, nil
}

// EffectivePrice is what the ticket actually sells for.
func (t Ticket) EffectivePrice() float64 {
	return catalog.PriceFor(t.Type, t.Price)
}

// PurchaseOrder is an immutable bundle of tickets bought together. The
// ticket list is fixed at construction and never mutated afterwards.
type PurchaseOrder struct {
	OrderID    string    `json:"order_id"`
	Tickets    []Ticket  `json:"tickets"`
	TotalPrice float64   `json:"total_price"`
	OrderDate  time.Time `json:"order_date"`
}

func (o PurchaseOrder) Identity() string {
	return o.OrderID
}
