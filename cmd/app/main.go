package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/marhaba-park/mp-booking/config"
	"github.com/marhaba-park/mp-booking/internal/module/adminapp/report"
	"github.com/marhaba-park/mp-booking/internal/module/bookingapp/booking"
	"github.com/marhaba-park/mp-booking/internal/module/bookingapp/catalog"
	"github.com/marhaba-park/mp-booking/internal/module/bookingapp/event"
	"github.com/marhaba-park/mp-booking/internal/module/bookingapp/guest"
	"github.com/marhaba-park/mp-booking/internal/module/bookingapp/order"
	"github.com/marhaba-park/mp-booking/pkg/applogger"
	"github.com/marhaba-park/mp-booking/pkg/clock"
	"github.com/marhaba-park/mp-booking/pkg/errors"
	"github.com/marhaba-park/mp-booking/pkg/filestore"
	"github.com/marhaba-park/mp-booking/pkg/validator"
)

func main() {
	godotenv.Load()

	c := config.Get()
	logger := applogger.GetLogrus()
	validate := validator.Get()
	ctx := context.Background()

	guestStore := filestore.New[guest.Guest](logger, filepath.Join(c.Store.DataDir, c.Store.GuestFile))
	eventStore := filestore.New[event.Event](logger, filepath.Join(c.Store.DataDir, c.Store.EventFile))
	orderStore := filestore.New[order.PurchaseOrder](logger, filepath.Join(c.Store.DataDir, c.Store.OrderFile))

	guestRepository := guest.NewGuestRepository(logger, guestStore)
	eventRepository := event.NewEventRepository(logger, eventStore)
	orderRepository := order.NewOrderRepository(logger, orderStore)

	system := booking.NewSystem(booking.SystemProperty{
		Logger:          logger,
		Validate:        validate,
		Clock:           clock.NewSystem(),
		GuestRepository: guestRepository,
		EventRepository: eventRepository,
		OrderRepository: orderRepository,
	})

	if err := system.Restore(ctx); err != nil {
		logger.WithError(err).Fatal("could not restore booking state")
	}

	admin := &guest.Admin{
		User: guest.User{
			Name:     c.Admin.Name,
			Email:    c.Admin.Email,
			Password: c.Admin.Password,
		},
		AdminID: c.Admin.ID,
	}
	system.SetAdmin(admin)

	reports := report.NewUseCase(report.UseCaseProperty{
		Logger:   logger,
		Validate: validate,
		Admin:    admin,
		System:   system,
	})

	runMenu(ctx, system, reports)
}

func runMenu(ctx context.Context, system *booking.System, reports report.UseCase) {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println()
		fmt.Println("Ticket Booking System")
		fmt.Println(" 1) Register guest")
		fmt.Println(" 2) Delete guest")
		fmt.Println(" 3) View tickets")
		fmt.Println(" 4) View events")
		fmt.Println(" 5) Create event")
		fmt.Println(" 6) Purchase tickets")
		fmt.Println(" 7) Guest purchase history")
		fmt.Println(" 8) Admin dashboard")
		fmt.Println(" 0) Exit")

		switch prompt(reader, "choice") {
		case "1":
			registerGuest(ctx, reader, system)
		case "2":
			deleteGuest(reader, system)
		case "3":
			viewTickets(system)
		case "4":
			viewEvents(system)
		case "5":
			createEvent(ctx, reader, system)
		case "6":
			purchaseTickets(ctx, reader, system)
		case "7":
			name := prompt(reader, "guest name")
			fmt.Println(system.FetchGuestPurchaseHistory(name))
		case "8":
			adminDashboard(ctx, reader, reports)
		case "0", "":
			return
		default:
			fmt.Println("Unknown choice.")
		}
	}
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Printf("%s> ", label)
	line, _ := reader.ReadString('\n')

	return strings.TrimSpace(line)
}

func registerGuest(ctx context.Context, reader *bufio.Reader, system *booking.System) {
	req := booking.RegisterGuestRequest{
		GuestID: prompt(reader, "guest id"),
		Name:    prompt(reader, "name"),
		Email:   prompt(reader, "email"),
		Phone:   prompt(reader, "phone"),
	}

	g, err := system.RegisterGuest(ctx, req)
	if err != nil {
		fmt.Println("Error:", errors.Destruct(err).Message)
		return
	}

	fmt.Printf("Guest Registered: %s <%s>\n", g.Name, g.Email)
}

func deleteGuest(reader *bufio.Reader, system *booking.System) {
	id := prompt(reader, "guest id")
	if id == "" {
		fmt.Println("Guest ID cannot be empty!")
		return
	}

	if system.DeleteGuest(id) {
		fmt.Printf("Guest with ID %s has been deleted successfully!\n", id)
	} else {
		fmt.Printf("Guest with ID %s Not Found!\n", id)
	}
}

func viewTickets(system *booking.System) {
	for _, t := range system.CatalogTickets() {
		fmt.Printf("Name: %s\n", catalog.DisplayName(t.Type))
		fmt.Printf("Price: DHS%.2f\n", t.EffectivePrice())
		fmt.Printf("Discount: %s\n", t.DiscountAvailable)
		fmt.Printf("Description: %s\n", t.Description)
		fmt.Println("*******************")
	}
}

func viewEvents(system *booking.System) {
	events := system.Events()
	if len(events) == 0 {
		fmt.Println("No events available.")
		return
	}

	for _, e := range events {
		fmt.Printf("%s - %s to %s\n", e.Name, e.StartDate, e.EndDate)
	}
}

func createEvent(ctx context.Context, reader *bufio.Reader, system *booking.System) {
	req := booking.CreateEventRequest{
		Name:      prompt(reader, "event name"),
		StartDate: prompt(reader, "start date"),
		EndDate:   prompt(reader, "end date"),
	}

	e, err := system.CreateEvent(ctx, req)
	if err != nil {
		fmt.Println("Error:", errors.Destruct(err).Message)
		return
	}

	fmt.Printf("Event created: %s\n", e.Name)
}

func purchaseTickets(ctx context.Context, reader *bufio.Reader, system *booking.System) {
	orderID := prompt(reader, "order id")
	guestName := prompt(reader, "guest name")
	cart := system.NewCart()

	for {
		raw := prompt(reader, "ticket type (blank to finish)")
		if raw == "" {
			break
		}

		t, err := catalog.ParseType(raw)
		if err != nil {
			fmt.Println("Error:", errors.Destruct(err).Message)
			continue
		}

		visitDate := prompt(reader, "visit date")
		ticket, err := system.AddTicket(cart, t, visitDate)
		if err != nil {
			fmt.Println("Error:", errors.Destruct(err).Message)
			continue
		}

		fmt.Printf("%s - DHS%v\n", catalog.DisplayName(ticket.Type), ticket.EffectivePrice())
		fmt.Printf("Total Price: DHS%v\n", cart.Subtotal())
	}

	po, err := system.ConfirmOrder(ctx, cart, orderID, guestName)
	if err != nil {
		fmt.Println("Error:", errors.Destruct(err).Message)
		return
	}

	fmt.Printf("Your order has been successfully placed! Total: DHS%v\n", po.TotalPrice)
}

func adminDashboard(ctx context.Context, reader *bufio.Reader, reports report.UseCase) {
	fmt.Println(reports.SalesReport())

	raw := prompt(reader, "ticket type to update discount (blank to skip)")
	if raw == "" {
		return
	}

	t, err := catalog.ParseType(raw)
	if err != nil {
		fmt.Println("Error:", errors.Destruct(err).Message)
		return
	}

	text := prompt(reader, "new discount criteria")
	if err := reports.UpdateDiscount(ctx, report.UpdateDiscountRequest{Type: t, Discount: text}); err != nil {
		fmt.Println("Error:", errors.Destruct(err).Message)
		return
	}

	fmt.Printf("Discount updated for %s to '%s'.\n", catalog.DisplayName(t), text)
}
