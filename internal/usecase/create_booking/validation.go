package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/domain"
)

// validateRequest валидирует запрос на создание бронирования.
// Порядок проверок: идентификаторы, дата, диапазон часов, длительность,
// минимальный запас времени до начала
func validateRequest(req *Request, now time.Time) error {
	if req.UserID == uuid.Nil {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.SpaceID == uuid.Nil {
		return fmt.Errorf("%w: spaceID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if req.StartHour < domain.OpenHour || req.StartHour >= domain.LastStartHour {
		return fmt.Errorf("%w: startHour must be in [%d, %d)", ErrInvalidInput, domain.OpenHour, domain.LastStartHour)
	}

	if req.EndHour > domain.CloseHour {
		return fmt.Errorf("%w: endHour must be at most %d", ErrInvalidInput, domain.CloseHour)
	}

	if req.StartHour >= req.EndHour {
		return ErrInvalidTimeRange
	}

	if req.Hours() > domain.MaxBookingHours {
		return fmt.Errorf("%w: booking is limited to %d hours", ErrMaxDurationExceeded, domain.MaxBookingHours)
	}

	// Бронировать можно не позднее, чем за час до начала
	if req.Start().Before(now.Add(domain.MinNotice)) {
		return ErrTooLateToBook
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
