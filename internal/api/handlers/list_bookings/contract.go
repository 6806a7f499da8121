package list_bookings

import (
	"context"

	bookingsModels "github.com/m04kA/SMC-SpaceService/internal/service/bookings/models"
)

type BookingsService interface {
	ListBookings(ctx context.Context, req *bookingsModels.ListBookingsRequest) (*bookingsModels.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
