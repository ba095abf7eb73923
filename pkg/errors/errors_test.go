package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/marhaba-park/mp-booking/pkg/status"
)

func TestDestruct(t *testing.T) {
	t.Parallel()

	t.Run("application error passes through", func(t *testing.T) {
		err := New(http.StatusNotFound, status.NOT_FOUND, "guest with id '9' is not found")

		ae := Destruct(err)
		if ae.HTTPStatusCode != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", ae.HTTPStatusCode)
		}
		if ae.Status != status.NOT_FOUND {
			t.Fatalf("expected NOT_FOUND, got %s", ae.Status)
		}
		if err.Error() != "guest with id '9' is not found" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	})

	t.Run("foreign error becomes internal", func(t *testing.T) {
		ae := Destruct(fmt.Errorf("disk on fire"))
		if ae.HTTPStatusCode != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", ae.HTTPStatusCode)
		}
		if ae.Status != status.INTERNAL_SERVER_ERROR {
			t.Fatalf("expected INTERNAL_SERVER_ERROR, got %s", ae.Status)
		}
		if ae.Message != "disk on fire" {
			t.Fatalf("unexpected message %q", ae.Message)
		}
	})
}
