package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/domain"
	createBooking "github.com/m04kA/SMC-SpaceService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SpaceID   string  `json:"spaceId"`
	Date      string  `json:"date"` // "2026-03-10"
	StartHour int     `json:"startHour"`
	EndHour   int     `json:"endHour"`
	Notes     *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	SpaceID       string  `json:"spaceId"`
	StartDatetime string  `json:"startDatetime"`
	EndDatetime   string  `json:"endDatetime"`
	Hours         int     `json:"hours"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`
	StatusLabel   string  `json:"statusLabel"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Владелец берется из аутентифицированного principal, не из тела запроса
func (r *CreateBookingRequest) ToUseCaseRequest(principal auth.Principal) (*createBooking.Request, error) {
	spaceID, err := uuid.Parse(r.SpaceID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    principal.UserID,
		SpaceID:   spaceID,
		Date:      date,
		StartHour: r.StartHour,
		EndHour:   r.EndHour,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	b := resp.Booking
	return &BookingResponse{
		ID:            b.ID.String(),
		UserID:        b.UserID.String(),
		SpaceID:       b.SpaceID.String(),
		StartDatetime: b.StartDatetime.Format(time.RFC3339),
		EndDatetime:   b.EndDatetime.Format(time.RFC3339),
		Hours:         b.Hours(),
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		StatusLabel:   b.Status.Label(),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}
