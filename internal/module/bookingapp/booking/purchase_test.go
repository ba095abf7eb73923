package booking

import (
	"context"
	"net/http"
	"testing"

	"github.com/marhaba-park/mp-booking/internal/module/bookingapp/catalog"
	"github.com/marhaba-park/mp-booking/pkg/errors"
	"github.com/marhaba-park/mp-booking/pkg/status"
)

func TestSystem_AddTicket(t *testing.T) {
	t.Parallel()

	env := newTestSystem(t)
	cart := env.system.NewCart()

	first, err := env.system.AddTicket(cart, catalog.SingleDayPass, "2/12/2024")
	if err != nil {
		t.Fatal(err)
	}
	second, err := env.system.AddTicket(cart, catalog.SingleDayPass, "3/12/2024")
	if err != nil {
		t.Fatal(err)
	}

	if first.TicketID == second.TicketID {
		t.Fatal("expected repeated picks to be independent tickets")
	}
	if cart.Size() != 2 {
		t.Fatalf("expected 2 tickets in the cart, got %d", cart.Size())
	}
	if got := cart.Subtotal(); got != 550 {
		t.Fatalf("expected subtotal 550, got %v", got)
	}

	if _, err := env.system.AddTicket(cart, catalog.Type("FREE_PASS"), ""); err == nil {
		t.Fatal("expected an error for an unknown type")
	}
	if cart.Size() != 2 {
		t.Fatalf("expected cart unchanged after rejection, got %d", cart.Size())
	}
}

func TestSystem_ConfirmOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("full purchase scenario", func(t *testing.T) {
		env := newTestSystem(t)
		registerTestGuest(t, env, "7", "Test")

		cart := env.system.NewCart()
		if _, err := env.system.AddTicket(cart, catalog.SingleDayPass, "2/12/2024"); err != nil {
			t.Fatal(err)
		}
		group, err := env.system.AddTicket(cart, catalog.GroupTicket, "2/12/2024")
		if err != nil {
			t.Fatal(err)
		}
		if got := group.EffectivePrice(); got != 2200 {
			t.Fatalf("expected derived group price 2200, got %v", got)
		}

		po, err := env.system.ConfirmOrder(ctx, cart, "O1", "Test")
		if err != nil {
			t.Fatal(err)
		}
		if po.TotalPrice != 2475 {
			t.Fatalf("expected total 2475, got %v", po.TotalPrice)
		}
		if !po.OrderDate.Equal(testNow) {
			t.Fatalf("expected order date %v, got %v", testNow, po.OrderDate)
		}

		g, ok := env.system.FetchGuestByName("Test")
		if !ok {
			t.Fatal("expected guest to exist")
		}
		if len(g.Orders) != 1 || len(g.Orders[0].Tickets) != 2 {
			t.Fatalf("expected history with 2 tickets, got %+v", g.Orders)
		}
		if got := env.system.TotalSales(); got != 2475 {
			t.Fatalf("expected total sales 2475, got %v", got)
		}

		stored, err := env.orderRepository.FindByID(ctx, "O1")
		if err != nil {
			t.Fatalf("expected order on file, got %v", err)
		}
		if stored.TotalPrice != 2475 {
			t.Fatalf("unexpected stored order %+v", stored)
		}

		storedGuest, err := env.guestRepository.FindByID(ctx, "7")
		if err != nil {
			t.Fatal(err)
		}
		if len(storedGuest.Orders) != 1 {
			t.Fatalf("expected guest file to carry the history, got %+v", storedGuest.Orders)
		}
	})

	t.Run("empty cart is rejected before any write", func(t *testing.T) {
		env := newTestSystem(t)
		registerTestGuest(t, env, "7", "Test")

		_, err := env.system.ConfirmOrder(ctx, env.system.NewCart(), "O1", "Test")
		if err == nil {
			t.Fatal("expected a validation error")
		}
		if errors.Destruct(err).Status != status.BAD_REQUEST {
			t.Fatalf("expected BAD_REQUEST, got %+v", errors.Destruct(err))
		}

		records, err := env.orderRepository.Load(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(records) != 0 {
			t.Fatalf("expected an empty ledger, got %+v", records)
		}
	})

	t.Run("empty order id is rejected before any write", func(t *testing.T) {
		env := newTestSystem(t)
		registerTestGuest(t, env, "7", "Test")

		cart := env.system.NewCart()
		if _, err := env.system.AddTicket(cart, catalog.SingleDayPass, "2/12/2024"); err != nil {
			t.Fatal(err)
		}

		if _, err := env.system.ConfirmOrder(ctx, cart, "", "Test"); err == nil {
			t.Fatal("expected a validation error")
		}

		records, err := env.orderRepository.Load(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(records) != 0 {
			t.Fatalf("expected an empty ledger, got %+v", records)
		}
	})

	t.Run("unknown guest leaves an orphaned order on file", func(t *testing.T) {
		env := newTestSystem(t)

		cart := env.system.NewCart()
		if _, err := env.system.AddTicket(cart, catalog.SingleDayPass, "2/12/2024"); err != nil {
			t.Fatal(err)
		}

		_, err := env.system.ConfirmOrder(ctx, cart, "O9", "Nobody")
		if err == nil {
			t.Fatal("expected a not-found error")
		}
		ae := errors.Destruct(err)
		if ae.HTTPStatusCode != http.StatusNotFound || ae.Status != status.NOT_FOUND {
			t.Fatalf("expected not found, got %+v", ae)
		}

		// The ledger write happened before the guest lookup.
		if _, err := env.orderRepository.FindByID(ctx, "O9"); err != nil {
			t.Fatalf("expected the orphaned order on file, got %v", err)
		}
		if got := env.system.TotalSales(); got != 0 {
			t.Fatalf("expected total sales unchanged, got %v", got)
		}
	})

	t.Run("history survives restart", func(t *testing.T) {
		dir := t.TempDir()
		env := newTestSystemAt(t, dir)
		registerTestGuest(t, env, "7", "Test")

		cart := env.system.NewCart()
		if _, err := env.system.AddTicket(cart, catalog.GroupTicket, "2/12/2024"); err != nil {
			t.Fatal(err)
		}
		if _, err := env.system.ConfirmOrder(ctx, cart, "O1", "Test"); err != nil {
			t.Fatal(err)
		}

		reopened := newTestSystemAt(t, dir)
		if err := reopened.system.Restore(ctx); err != nil {
			t.Fatal(err)
		}

		g, ok := reopened.system.FetchGuestByName("Test")
		if !ok {
			t.Fatal("expected guest after restart")
		}
		if len(g.Orders) != 1 || g.Orders[0].TotalPrice != 2200 {
			t.Fatalf("expected history to survive restart, got %+v", g.Orders)
		}
	})
}
