package guest

import (
	"fmt"
	"strings"

	"github.com/marhaba-park/mp-booking/internal/module/bookingapp/order"
)

// User carries the fields shared by every account holder. The password is
// stored as the opaque string it was supplied as; nothing hashes it.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Guest is a registered customer. The guest exclusively owns its purchase
// history; orders are appended on confirmation and individual entries are
// never rewritten.
type Guest struct {
	User
	GuestID string                `json:"guest_id"`
	Phone   string                `json:"phone"`
	Orders  []order.PurchaseOrder `json:"orders"`
}

func (g Guest) Identity() string {
	return g.GuestID
}

// Admin is the privileged reporting account. It reads aggregate state and
// never owns bookings.
type Admin struct {
	User
	AdminID string `json:"admin_id"`
}

// PurchaseHistory renders the guest's orders, order by order and ticket by
// ticket.
func (g Guest) PurchaseHistory() string {
	if len(g.Orders) == 0 {
		return "No purchase history available."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Purchase History for %s:\n", g.Name)
	b.WriteString(strings.Repeat("=", 40) + "\n")

	for _, o := range g.Orders {
		fmt.Fprintf(&b, "Order ID: %s\n", o.OrderID)
		fmt.Fprintf(&b, "Order Date: %s\n", o.OrderDate.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(&b, "Total Price: DHS%v\n", o.TotalPrice)
		b.WriteString("Tickets:\n")

		for _, t := range o.Tickets {
			fmt.Fprintf(&b, "  - Ticket ID: %d\n", t.TicketID)
			fmt.Fprintf(&b, "    Description: %s\n", t.Description)
			fmt.Fprintf(&b, "    Price: DHS%v\n", t.EffectivePrice())
			fmt.Fprintf(&b, "    Visit Date: %s\n", t.VisitDate)
			fmt.Fprintf(&b, "    Limitations: %s\n", t.Limitations)
			fmt.Fprintf(&b, "    Validity: %s\n", t.Validity)
			fmt.Fprintf(&b, "    Discount Available: %s\n", t.DiscountAvailable)
		}
		b.WriteString(strings.Repeat("-", 40) + "\n")
	}

	return b.String()
}
