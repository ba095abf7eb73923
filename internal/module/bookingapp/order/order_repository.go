package order

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/marhaba-park/mp-booking/pkg/errors"
	"github.com/marhaba-park/mp-booking/pkg/filestore"
	"github.com/marhaba-park/mp-booking/pkg/status"
)

// Repository is the order ledger: every confirmed purchase order, keyed by
// order id.
type Repository interface {
	Load(ctx context.Context) ([]PurchaseOrder, error)
	Upsert(ctx context.Context, o PurchaseOrder) error
	FindByID(ctx context.Context, id string) (PurchaseOrder, error)
}

type orderRepository struct {
	logger *logrus.Logger
	store  *filestore.Store[PurchaseOrder]
}

func NewOrderRepository(logger *logrus.Logger, store *filestore.Store[PurchaseOrder]) Repository {
	return &orderRepository{
		logger: logger,
		store:  store,
	}
}

// Load implements Repository.
func (r *orderRepository) Load(ctx context.Context) ([]PurchaseOrder, error) {
	records, err := r.store.Load(ctx)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while loading purchase orders")
	}

	return records, nil
}

// Upsert implements Repository.
func (r *orderRepository) Upsert(ctx context.Context, o PurchaseOrder) error {
	if err := r.store.Upsert(ctx, o); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while saving purchase order's properties")
	}

	return nil
}

// FindByID implements Repository.
func (r *orderRepository) FindByID(ctx context.Context, id string) (PurchaseOrder, error) {
	record, found, err := r.store.FindBy(ctx, func(o PurchaseOrder) bool {
		return o.OrderID == id
	})
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return PurchaseOrder{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting purchase order's properties")
	}
	if !found {
		return PurchaseOrder{}, errors.New(http.StatusNotFound, status.NOT_FOUND, fmt.Sprintf("purchase order with id '%s' is not found", id))
	}

	return record, nil
}
