package report

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/marhaba-park/mp-booking/internal/module/bookingapp/booking"
	"github.com/marhaba-park/mp-booking/internal/module/bookingapp/catalog"
	"github.com/marhaba-park/mp-booking/internal/module/bookingapp/guest"
	"github.com/marhaba-park/mp-booking/pkg/errors"
	"github.com/marhaba-park/mp-booking/pkg/status"
)

// UseCase is the admin dashboard: read-only reporting over the booking
// system plus the discount-text override register.
type UseCase interface {
	SalesReport() string
	ManageSystem() string
	UpdateDiscount(ctx context.Context, req UpdateDiscountRequest) error
	DiscountOverrides() map[catalog.Type]string
}

type UpdateDiscountRequest struct {
	Type     catalog.Type `validate:"required"`
	Discount string       `validate:"required"`
}

type reportUseCase struct {
	logger   *logrus.Logger
	validate *validator.Validate
	admin    *guest.Admin
	system   *booking.System

	// overrides live for the life of the process only. Catalog lookups and
	// ticket construction never read them; the dashboard is the sole
	// consumer.
	overrides map[catalog.Type]string
}

type UseCaseProperty struct {
	Logger   *logrus.Logger
	Validate *validator.Validate
	Admin    *guest.Admin
	System   *booking.System
}

func NewUseCase(props UseCaseProperty) UseCase {
	return &reportUseCase{
		logger:    props.Logger,
		validate:  props.Validate,
		admin:     props.Admin,
		system:    props.System,
		overrides: make(map[catalog.Type]string),
	}
}

// SalesReport implements UseCase.
func (u *reportUseCase) SalesReport() string {
	return fmt.Sprintf("Total Ticket Sales Today: DHS%v", u.system.TotalSales())
}

// ManageSystem implements UseCase.
func (u *reportUseCase) ManageSystem() string {
	return fmt.Sprintf("Managing system with total sales: %v", u.system.TotalSales())
}

// UpdateDiscount implements UseCase. It records a replacement discount
// text for a ticket type without feeding it back into the catalog.
func (u *reportUseCase) UpdateDiscount(ctx context.Context, req UpdateDiscountRequest) error {
	if err := u.validate.StructCtx(ctx, req); err != nil {
		if errorFields, ok := err.(validator.ValidationErrors); ok {
			errMessages := make([]string, len(errorFields))
			for k, errorField := range errorFields {
				errMessages[k] = fmt.Sprintf("invalid '%s' with value '%v'", errorField.Field(), errorField.Value())
			}
			return errors.New(http.StatusBadRequest, status.BAD_REQUEST, strings.Join(errMessages, ", "))
		}
		return errors.New(http.StatusBadRequest, status.BAD_REQUEST, err.Error())
	}

	if !catalog.Valid(req.Type) {
		return errors.New(http.StatusUnprocessableEntity, status.UNPROCESSABLE_ENTITY, fmt.Sprintf("invalid ticket type: %s", req.Type))
	}

	u.overrides[req.Type] = req.Discount
	u.logger.WithContext(ctx).WithFields(logrus.Fields{
		"ticket_type": req.Type,
		"discount":    req.Discount,
	}).Info("discount criteria updated")

	return nil
}

// DiscountOverrides implements UseCase.
func (u *reportUseCase) DiscountOverrides() map[catalog.Type]string {
	out := make(map[catalog.Type]string, len(u.overrides))
	for k, v := range u.overrides {
		out[k] = v
	}

	return out
}
