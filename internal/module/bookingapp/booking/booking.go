package booking

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/marhaba-park/mp-booking/internal/module/bookingapp/catalog"
	"github.com/marhaba-park/mp-booking/internal/module/bookingapp/event"
	"github.com/marhaba-park/mp-booking/internal/module/bookingapp/guest"
	"github.com/marhaba-park/mp-booking/internal/module/bookingapp/order"
	"github.com/marhaba-park/mp-booking/pkg/clock"
	"github.com/marhaba-park/mp-booking/pkg/errors"
	"github.com/marhaba-park/mp-booking/pkg/status"
)

const defaultGuestPassword = "password123"

// System is the aggregate root. It holds the live guest and event lists,
// the admin reference, and the total-sales accumulator, coordinating the
// three registries and the catalog. It is not safe for concurrent use;
// the whole system assumes a single caller thread.
type System struct {
	logger   *logrus.Logger
	validate *validator.Validate
	clk      clock.Clock

	guestRepository guest.Repository
	eventRepository event.Repository
	orderRepository order.Repository

	guests     []*guest.Guest
	admin      *guest.Admin
	events     []event.Event
	totalSales float64
	ticketSeq  int64
}

type SystemProperty struct {
	Logger          *logrus.Logger
	Validate        *validator.Validate
	Clock           clock.Clock
	GuestRepository guest.Repository
	EventRepository event.Repository
	OrderRepository order.Repository
}

func NewSystem(props SystemProperty) *System {
	return &System{
		logger:          props.Logger,
		validate:        props.Validate,
		clk:             props.Clock,
		guestRepository: props.GuestRepository,
		eventRepository: props.EventRepository,
		orderRepository: props.OrderRepository,
		guests:          make([]*guest.Guest, 0),
		events:          make([]event.Event, 0),
	}
}

// Restore loads durable state into the running system. Guests deleted in a
// previous run come back here, because deletion never rewrites the guest
// file.
func (s *System) Restore(ctx context.Context) error {
	guests, err := s.guestRepository.Load(ctx)
	if err != nil {
		return err
	}

	events, err := s.eventRepository.Load(ctx)
	if err != nil {
		return err
	}

	s.guests = make([]*guest.Guest, len(guests))
	for i := range guests {
		g := guests[i]
		s.guests[i] = &g
	}
	s.events = events

	return nil
}

// RegisterGuest durably saves the new guest and adds it to the live list.
// A guest with the same id replaces the stored and in-memory record rather
// than duplicating it.
func (s *System) RegisterGuest(ctx context.Context, req RegisterGuestRequest) (guest.Guest, error) {
	if err := s.validateStruct(ctx, req); err != nil {
		return guest.Guest{}, err
	}

	password := req.Password
	if password == "" {
		password = defaultGuestPassword
	}

	g := guest.Guest{
		User: guest.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: password,
		},
		GuestID: req.GuestID,
		Phone:   req.Phone,
		Orders:  make([]order.PurchaseOrder, 0),
	}

	if err := s.guestRepository.Upsert(ctx, g); err != nil {
		return guest.Guest{}, err
	}

	s.attachGuest(&g)
	s.logger.WithContext(ctx).WithField("guest_id", g.GuestID).Info("guest registered")

	return g, nil
}

func (s *System) attachGuest(g *guest.Guest) {
	for i, existing := range s.guests {
		if existing.GuestID == g.GuestID {
			s.guests[i] = g
			return
		}
	}
	s.guests = append(s.guests, g)
}

// DeleteGuest removes the guest from the running system only. The guest
// file keeps the record until the guest's next upsert, so a restart brings
// the guest back.
func (s *System) DeleteGuest(id string) bool {
	for i, g := range s.guests {
		if g.GuestID == id {
			s.guests = append(s.guests[:i], s.guests[i+1:]...)
			return true
		}
	}

	return false
}

// FetchGuestByID scans the live guest list; absent is a plain false, not
// an error.
func (s *System) FetchGuestByID(id string) (*guest.Guest, bool) {
	for _, g := range s.guests {
		if g.GuestID == id {
			return g, true
		}
	}

	return nil, false
}

// FetchGuestByName matches names case-insensitively.
func (s *System) FetchGuestByName(name string) (*guest.Guest, bool) {
	for _, g := range s.guests {
		if strings.EqualFold(g.Name, name) {
			return g, true
		}
	}

	return nil, false
}

func (s *System) RegisteredGuests() []*guest.Guest {
	return s.guests
}

func (s *System) SetGuests(guests []*guest.Guest) {
	if guests == nil {
		guests = make([]*guest.Guest, 0)
	}
	s.guests = guests
}

// CreateEvent constructs the event and immediately upserts it into the
// event registry.
func (s *System) CreateEvent(ctx context.Context, req CreateEventRequest) (event.Event, error) {
	if err := s.validateStruct(ctx, req); err != nil {
		return event.Event{}, err
	}

	e := event.Event{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	if err := s.eventRepository.Upsert(ctx, e); err != nil {
		return event.Event{}, err
	}

	s.events = append(s.events, e)
	s.logger.WithContext(ctx).WithField("event_name", e.Name).Info("event created")

	return e, nil
}

func (s *System) Events() []event.Event {
	return s.events
}

func (s *System) SetEvents(events []event.Event) {
	if events == nil {
		events = make([]event.Event, 0)
	}
	s.events = events
}

func (s *System) Admin() *guest.Admin {
	return s.admin
}

func (s *System) SetAdmin(a *guest.Admin) {
	s.admin = a
}

func (s *System) TotalSales() float64 {
	return s.totalSales
}

// SetTotalSales keeps the accumulator non-negative.
func (s *System) SetTotalSales(total float64) error {
	if math.IsNaN(total) || total < 0 {
		return errors.New(http.StatusBadRequest, status.BAD_REQUEST, "total sales should be a non-negative number")
	}
	s.totalSales = total

	return nil
}

// IncreaseTotalSales accepts only strictly positive amounts; on failure
// the accumulator is untouched.
func (s *System) IncreaseTotalSales(amount float64) error {
	if math.IsNaN(amount) || amount <= 0 {
		return errors.New(http.StatusBadRequest, status.BAD_REQUEST, "amount should be a positive number")
	}
	s.totalSales += amount

	return nil
}

// FetchGuestPurchaseHistory renders the named guest's history. An unknown
// name is reported inside the returned text rather than as an error.
func (s *System) FetchGuestPurchaseHistory(name string) string {
	g, ok := s.FetchGuestByName(name)
	if !ok {
		return fmt.Sprintf("No guest found with the name '%s'.", name)
	}

	return g.PurchaseHistory()
}

// CatalogTickets renders the catalog as one ticket per type, numbered in
// display order with the canonical price list. It is a read-only view, not
// inventory.
func (s *System) CatalogTickets() []order.Ticket {
	types := catalog.Types()
	tickets := make([]order.Ticket, 0, len(types))

	for i, t := range types {
		base, err := catalog.BasePrice(t)
		if err != nil {
			continue
		}
		ticket, err := order.NewTicket(int64(i+1), base, "", t)
		if err != nil {
			continue
		}
		tickets = append(tickets, ticket)
	}

	return tickets
}

func (s *System) validateStruct(ctx context.Context, payload interface{}) error {
	err := s.validate.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	errorFields, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.New(http.StatusBadRequest, status.BAD_REQUEST, err.Error())
	}

	errMessages := make([]string, len(errorFields))
	for k, errorField := range errorFields {
		errMessages[k] = fmt.Sprintf("invalid '%s' with value '%v'", errorField.Field(), errorField.Value())
	}

	return errors.New(http.StatusBadRequest, status.BAD_REQUEST, strings.Join(errMessages, ", "))
}
