package confirm_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/auth"
	bookingsModels "github.com/m04kA/SMC-SpaceService/internal/service/bookings/models"
)

type BookingsService interface {
	ConfirmPayment(ctx context.Context, bookingID uuid.UUID, principal auth.Principal) (*bookingsModels.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
