package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func dayAt(hour int) time.Time {
	return time.Date(2026, 3, 10, hour, 0, 0, 0, time.UTC)
}

func TestBooking_Overlaps(t *testing.T) {
	booking := &Booking{
		StartDatetime: dayAt(10),
		EndDatetime:   dayAt(12),
	}

	tests := []struct {
		name     string
		start    int
		end      int
		overlaps bool
	}{
		{"interval inside booking", 10, 11, true},
		{"booking inside interval", 9, 13, true},
		{"starts inside booking", 11, 13, true},
		{"ends inside booking", 9, 11, true},
		{"identical interval", 10, 12, true},
		{"abuts before", 8, 10, false},
		{"abuts after", 12, 14, false},
		{"fully before", 8, 9, false},
		{"fully after", 13, 14, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, booking.Overlaps(dayAt(tt.start), dayAt(tt.end)))
		})
	}
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestBooking_CanBeCancelledByOwner(t *testing.T) {
	start := dayAt(14)
	booking := &Booking{Status: StatusConfirmed, StartDatetime: start}

	// Больше 2 часов до начала - можно
	assert.True(t, booking.CanBeCancelledByOwner(start.Add(-3*time.Hour)))

	// Ровно 2 часа - уже нельзя (строгое неравенство)
	assert.False(t, booking.CanBeCancelledByOwner(start.Add(-2*time.Hour)))

	// Меньше 2 часов - нельзя
	assert.False(t, booking.CanBeCancelledByOwner(start.Add(-time.Hour)))

	// Терминальные статусы не отменяются независимо от времени
	cancelled := &Booking{Status: StatusCancelled, StartDatetime: start}
	assert.False(t, cancelled.CanBeCancelledByOwner(start.Add(-10*time.Hour)))

	completed := &Booking{Status: StatusCompleted, StartDatetime: start}
	assert.False(t, completed.CanBeCancelledByOwner(start.Add(-10*time.Hour)))
}

func TestBooking_Hours(t *testing.T) {
	booking := &Booking{StartDatetime: dayAt(10), EndDatetime: dayAt(13)}
	assert.Equal(t, 3, booking.Hours())
}

func TestSlot_Bounds(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	slot := Slot{Hour: 9, Available: true}

	assert.Equal(t, dayAt(9), slot.Start(date))
	assert.Equal(t, dayAt(10), slot.End(date))
}

func TestSpace_PriceFor(t *testing.T) {
	space := &Space{PricePerHour: 50}
	assert.Equal(t, 150.0, space.PriceFor(3))
	assert.Equal(t, 0.0, space.PriceFor(0))
}
