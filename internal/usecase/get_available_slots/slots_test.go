package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaceService/internal/domain"
)

var testDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func bookingAt(startHour, endHour int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		StartDatetime: time.Date(2026, 3, 10, startHour, 0, 0, 0, time.UTC),
		EndDatetime:   time.Date(2026, 3, 10, endHour, 0, 0, 0, time.UTC),
		Status:        status,
	}
}

func availability(slots []domain.Slot) map[int]bool {
	m := make(map[int]bool, len(slots))
	for _, s := range slots {
		m[s.Hour] = s.Available
	}
	return m
}

func TestBuildSlots_EmptyDay(t *testing.T) {
	slots := BuildSlots(testDate, nil)

	require.Len(t, slots, domain.SlotsPerDay)
	assert.Equal(t, domain.OpenHour, slots[0].Hour)
	assert.Equal(t, domain.LastStartHour, slots[len(slots)-1].Hour)

	for _, slot := range slots {
		assert.True(t, slot.Available, "hour %d", slot.Hour)
	}
}

func TestBuildSlots_OverlapRule(t *testing.T) {
	// Бронирование 10:00-12:00 занимает слоты 10 и 11,
	// граничащие слоты 9 и 12 остаются свободными
	bookings := []*domain.Booking{bookingAt(10, 12, domain.StatusConfirmed)}

	avail := availability(BuildSlots(testDate, bookings))

	assert.True(t, avail[9], "slot abutting booking start must stay available")
	assert.False(t, avail[10])
	assert.False(t, avail[11])
	assert.True(t, avail[12], "slot abutting booking end must stay available")
}

func TestBuildSlots_IgnoresInactiveBookings(t *testing.T) {
	bookings := []*domain.Booking{
		bookingAt(10, 12, domain.StatusCancelled),
		bookingAt(14, 16, domain.StatusCompleted),
	}

	for _, slot := range BuildSlots(testDate, bookings) {
		assert.True(t, slot.Available, "hour %d", slot.Hour)
	}
}

func TestBuildSlots_PendingBlocks(t *testing.T) {
	bookings := []*domain.Booking{bookingAt(8, 9, domain.StatusPending)}

	avail := availability(BuildSlots(testDate, bookings))
	assert.False(t, avail[8])
	assert.True(t, avail[9])
}

func TestBuildSlots_Idempotent(t *testing.T) {
	bookings := []*domain.Booking{
		bookingAt(9, 11, domain.StatusPending),
		bookingAt(15, 18, domain.StatusConfirmed),
	}

	first := BuildSlots(testDate, bookings)
	second := BuildSlots(testDate, bookings)

	assert.Equal(t, first, second)
}

func TestStartHours_FreeDay(t *testing.T) {
	slots := BuildSlots(testDate, nil)

	hours := StartHours(slots)

	// Все свободные часы кроме 21: для него нет допустимого конца
	require.Len(t, hours, domain.SlotsPerDay-1)
	assert.Equal(t, domain.OpenHour, hours[0])
	assert.Equal(t, domain.LastStartHour-1, hours[len(hours)-1])
	assert.NotContains(t, hours, domain.LastStartHour)
}

func TestStartHours_ExcludesOccupied(t *testing.T) {
	bookings := []*domain.Booking{bookingAt(10, 12, domain.StatusConfirmed)}
	slots := BuildSlots(testDate, bookings)

	hours := StartHours(slots)

	assert.NotContains(t, hours, 10)
	assert.NotContains(t, hours, 11)
	assert.Contains(t, hours, 9)
	assert.Contains(t, hours, 12)
}

func TestEndHours_AfterStart(t *testing.T) {
	slots := BuildSlots(testDate, nil)

	hours := EndHours(slots, 10)

	assert.NotContains(t, hours, 10)
	assert.Contains(t, hours, 11)
	assert.Contains(t, hours, domain.LastStartHour)
	// 22:00 - неявная граница закрытия
	assert.Contains(t, hours, domain.CloseHour)
}

func TestEndHours_ClosingBoundaryRequiresLastSlot(t *testing.T) {
	// Слот 21 занят - закончить в 22:00 нельзя
	bookings := []*domain.Booking{bookingAt(21, 22, domain.StatusConfirmed)}
	slots := BuildSlots(testDate, bookings)

	hours := EndHours(slots, 10)

	assert.NotContains(t, hours, domain.CloseHour)
	assert.NotContains(t, hours, domain.LastStartHour)
	assert.Contains(t, hours, 20)
}
