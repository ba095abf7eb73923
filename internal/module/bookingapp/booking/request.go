package booking

type RegisterGuestRequest struct {
	GuestID string `validate:"required"`
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"required"`
	// Password is optional; new guests fall back to the default.
	Password string
}

type CreateEventRequest struct {
	Name      string `validate:"required"`
	StartDate string `validate:"required"`
	EndDate   string `validate:"required"`
}
