package event

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/marhaba-park/mp-booking/pkg/errors"
	"github.com/marhaba-park/mp-booking/pkg/filestore"
	"github.com/marhaba-park/mp-booking/pkg/status"
)

// Repository is the event registry. Events have no delete path.
type Repository interface {
	Load(ctx context.Context) ([]Event, error)
	Upsert(ctx context.Context, e Event) error
}

type eventRepository struct {
	logger *logrus.Logger
	store  *filestore.Store[Event]
}

func NewEventRepository(logger *logrus.Logger, store *filestore.Store[Event]) Repository {
	return &eventRepository{
		logger: logger,
		store:  store,
	}
}

// Load implements Repository.
func (r *eventRepository) Load(ctx context.Context) ([]Event, error) {
	records, err := r.store.Load(ctx)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while loading events")
	}

	return records, nil
}

// Upsert implements Repository.
func (r *eventRepository) Upsert(ctx context.Context, e Event) error {
	if err := r.store.Upsert(ctx, e); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while saving event's properties")
	}

	return nil
}
