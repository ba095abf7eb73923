package guest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/marhaba-park/mp-booking/pkg/errors"
	"github.com/marhaba-park/mp-booking/pkg/filestore"
	"github.com/marhaba-park/mp-booking/pkg/status"
)

// Repository is the guest registry. Records are keyed by guest id and
// carry the guest's purchase history nested in the stored record.
type Repository interface {
	Load(ctx context.Context) ([]Guest, error)
	Upsert(ctx context.Context, g Guest) error
	Delete(ctx context.Context, id string) (bool, error)
	FindByID(ctx context.Context, id string) (Guest, error)
}

type guestRepository struct {
	logger *logrus.Logger
	store  *filestore.Store[Guest]
}

func NewGuestRepository(logger *logrus.Logger, store *filestore.Store[Guest]) Repository {
	return &guestRepository{
		logger: logger,
		store:  store,
	}
}

// Load implements Repository.
func (r *guestRepository) Load(ctx context.Context) ([]Guest, error) {
	records, err := r.store.Load(ctx)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while loading guests")
	}

	return records, nil
}

// Upsert implements Repository.
func (r *guestRepository) Upsert(ctx context.Context, g Guest) error {
	if err := r.store.Upsert(ctx, g); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while saving guest's properties")
	}

	return nil
}

// Delete implements Repository. The booking flow does not call this for
// guest removal; see the aggregate's DeleteGuest.
func (r *guestRepository) Delete(ctx context.Context, id string) (bool, error) {
	found, err := r.store.Delete(ctx, id)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return false, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while deleting guest's properties")
	}

	return found, nil
}

// FindByID implements Repository.
func (r *guestRepository) FindByID(ctx context.Context, id string) (Guest, error) {
	record, found, err := r.store.FindBy(ctx, func(g Guest) bool {
		return g.GuestID == id
	})
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return Guest{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting guest's properties")
	}
	if !found {
		return Guest{}, errors.New(http.StatusNotFound, status.NOT_FOUND, fmt.Sprintf("guest with id '%s' is not found", id))
	}

	return record, nil
}
