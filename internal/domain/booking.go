package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking бронирование пространства на интервал [StartDatetime, EndDatetime)
type Booking struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	SpaceID       uuid.UUID
	StartDatetime time.Time
	EndDatetime   time.Time
	TotalPrice    float64
	Status        BookingStatus
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если бронирование занимает слот
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled возвращает true, если бронирование ещё не в терминальном статусе
func (b *Booking) CanBeCancelled() bool {
	return !b.Status.IsTerminal()
}

// CanBeCancelledByOwner проверяет правило отмены для владельца:
// не позднее чем за 2 часа до начала и только из нетерминального статуса
func (b *Booking) CanBeCancelledByOwner(now time.Time) bool {
	return b.CanBeCancelled() && b.StartDatetime.Sub(now) > CancelNotice
}

// Hours возвращает длительность бронирования в целых часах
func (b *Booking) Hours() int {
	return int(b.EndDatetime.Sub(b.StartDatetime) / time.Hour)
}

// Overlaps проверяет пересечение с интервалом [start, end)
// Полуоткрытые интервалы: строгие неравенства с обеих сторон,
// граничащие интервалы (конец одного == начало другого) НЕ пересекаются
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartDatetime.Before(end) && b.EndDatetime.After(start)
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	SpaceID         *uuid.UUID     // Фильтр по пространству (опционально)
	UserID          *uuid.UUID     // Фильтр по пользователю (опционально)
	StartDate       *time.Time     // Начало периода (опционально, включительно)
	EndDate         *time.Time     // Конец периода (опционально, исключительно)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и завершённые
}
