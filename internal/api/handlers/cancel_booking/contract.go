package cancel_booking

import (
	"context"

	"github.com/google/uuid"

	bookingsModels "github.com/m04kA/SMC-SpaceService/internal/service/bookings/models"
)

type BookingsService interface {
	Cancel(ctx context.Context, bookingID uuid.UUID, req *bookingsModels.CancelBookingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
