package booking

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/marhaba-park/mp-booking/internal/module/bookingapp/catalog"
	"github.com/marhaba-park/mp-booking/internal/module/bookingapp/order"
	"github.com/marhaba-park/mp-booking/pkg/errors"
	"github.com/marhaba-park/mp-booking/pkg/status"
)

// Cart accumulates tickets for one pending purchase in insertion order.
// Nothing is durable until the order is confirmed; an abandoned cart
// leaves no trace.
type Cart struct {
	tickets  []order.Ticket
	subtotal float64
}

func (c *Cart) Tickets() []order.Ticket {
	return c.tickets
}

// Subtotal is the running display total. ConfirmOrder recomputes the
// final total from the tickets instead of trusting this.
func (c *Cart) Subtotal() float64 {
	return c.subtotal
}

func (c *Cart) Size() int {
	return len(c.tickets)
}

func (s *System) NewCart() *Cart {
	return &Cart{}
}

// AddTicket prices the pick from the catalog and snapshots it into the
// cart. Every call issues a fresh ticket id, so repeated picks of one type
// stay independent tickets.
func (s *System) AddTicket(cart *Cart, t catalog.Type, visitDate string) (order.Ticket, error) {
	base, err := catalog.BasePrice(t)
	if err != nil {
		return order.Ticket{}, err
	}

	s.ticketSeq++
	ticket, err := order.NewTicket(s.ticketSeq, base, visitDate, t)
	if err != nil {
		return order.Ticket{}, err
	}

	cart.tickets = append(cart.tickets, ticket)
	cart.subtotal += ticket.EffectivePrice()

	return ticket, nil
}

// ConfirmOrder turns the cart into a durable purchase order attached to
// the named guest. The ledger write happens before the guest lookup, so an
// unknown guest leaves the order on file with no owner; the caller must
// reconcile that state by hand.
func (s *System) ConfirmOrder(ctx context.Context, cart *Cart, orderID string, guestName string) (order.PurchaseOrder, error) {
	if orderID == "" || cart == nil || len(cart.tickets) == 0 {
		return order.PurchaseOrder{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "an order id and at least one ticket are required")
	}

	var total float64
	for _, t := range cart.tickets {
		total += t.EffectivePrice()
	}

	po := order.PurchaseOrder{
		OrderID:    orderID,
		Tickets:    append([]order.Ticket(nil), cart.tickets...),
		TotalPrice: total,
		OrderDate:  s.clk.Now(),
	}

	if err := s.orderRepository.Upsert(ctx, po); err != nil {
		return order.PurchaseOrder{}, err
	}

	g, ok := s.FetchGuestByName(guestName)
	if !ok {
		s.logger.WithContext(ctx).WithFields(logrus.Fields{
			"order_id":   orderID,
			"guest_name": guestName,
		}).Warn("order persisted without an owning guest")

		return order.PurchaseOrder{}, errors.New(http.StatusNotFound, status.NOT_FOUND, fmt.Sprintf("guest with name '%s' is not found", guestName))
	}

	g.Orders = append(g.Orders, po)
	if err := s.guestRepository.Upsert(ctx, *g); err != nil {
		return order.PurchaseOrder{}, err
	}

	if err := s.IncreaseTotalSales(total); err != nil {
		return order.PurchaseOrder{}, err
	}

	s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"order_id":    orderID,
		"guest_id":    g.GuestID,
		"total_price": total,
	}).Info("order confirmed")

	return po, nil
}
