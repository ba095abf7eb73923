package event

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/marhaba-park/mp-booking/pkg/filestore"
)

func newTestRepository(t *testing.T) Repository {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	store := filestore.New[Event](logger, filepath.Join(t.TempDir(), "events.json"))

	return NewEventRepository(logger, store)
}

func TestEventRepository_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestRepository(t)

	want := []Event{
		{Name: "National Day", StartDate: "2/12/2024", EndDate: "3/12/2024"},
		{Name: "Flag Day", StartDate: "3/11/2024", EndDate: "4/11/2024"},
	}
	for _, e := range want {
		if err := repo.Upsert(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestEventRepository_DuplicateRules(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestRepository(t)

	e := Event{Name: "National Day", StartDate: "2/12/2024", EndDate: "3/12/2024"}

	t.Run("identical event is stored once", func(t *testing.T) {
		if err := repo.Upsert(ctx, e); err != nil {
			t.Fatal(err)
		}
		if err := repo.Upsert(ctx, e); err != nil {
			t.Fatal(err)
		}

		got, err := repo.Load(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 event, got %d", len(got))
		}
	})

	t.Run("same name with other dates is a new event", func(t *testing.T) {
		other := Event{Name: "National Day", StartDate: "2/12/2025", EndDate: "3/12/2025"}
		if err := repo.Upsert(ctx, other); err != nil {
			t.Fatal(err)
		}

		got, err := repo.Load(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 events, got %d", len(got))
		}
	})
}
