package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID    uuid.UUID
	Status    *string
	Principal auth.Principal
}

// ListBookingsRequest запрос на получение бронирований с фильтрацией (админ)
type ListBookingsRequest struct {
	SpaceID         *uuid.UUID
	UserID          *uuid.UUID
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
	Principal       auth.Principal
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		SpaceID:         r.SpaceID,
		UserID:          r.UserID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Reason    string
	Principal auth.Principal
}

// UpdateStatusRequest запрос на обновление статуса бронирования (админ)
type UpdateStatusRequest struct {
	Status    string
	Reason    *string
	Override  bool
	Principal auth.Principal
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	SpaceID       uuid.UUID `json:"spaceId"`
	StartDatetime time.Time `json:"startDatetime"`
	EndDatetime   time.Time `json:"endDatetime"`
	Hours         int       `json:"hours"`
	TotalPrice    float64   `json:"totalPrice"`

	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
	StatusColor string `json:"statusColor"`

	Notes              *string    `json:"notes,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		SpaceID:            b.SpaceID,
		StartDatetime:      b.StartDatetime,
		EndDatetime:        b.EndDatetime,
		Hours:              b.Hours(),
		TotalPrice:         b.TotalPrice,
		Status:             string(b.Status),
		StatusLabel:        b.Status.Label(),
		StatusColor:        b.Status.Color(),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	parsed, err := domain.ParseBookingStatus(status)
	if err != nil {
		return "", ErrInvalidStatus
	}
	return parsed, nil
}
