package update_booking_status

import (
	"context"

	"github.com/google/uuid"

	bookingsModels "github.com/m04kA/SMC-SpaceService/internal/service/bookings/models"
)

type BookingsService interface {
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, req *bookingsModels.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
