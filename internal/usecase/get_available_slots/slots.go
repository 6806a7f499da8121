package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SpaceService/internal/domain"
)

// BuildSlots строит сетку из 14 почасовых слотов (8:00-21:00) на указанную дату
// по снапшоту бронирований
//
// Слот недоступен, если его интервал пересекается с активным бронированием.
// Интервалы полуоткрытые: строгие неравенства с обеих сторон, поэтому слот,
// граничащий с бронированием (заканчивается ровно там, где оно начинается,
// или наоборот), считается свободным
//
// Функция чистая: одинаковый снапшот бронирований даёт одинаковую сетку
func BuildSlots(date time.Time, bookings []*domain.Booking) []domain.Slot {
	slots := make([]domain.Slot, 0, domain.SlotsPerDay)

	for hour := domain.OpenHour; hour <= domain.LastStartHour; hour++ {
		slot := domain.Slot{Hour: hour, Available: true}
		slotStart := slot.Start(date)
		slotEnd := slot.End(date)

		for _, booking := range bookings {
			// Слот занимают только pending и confirmed
			if !booking.IsActive() {
				continue
			}
			if booking.Overlaps(slotStart, slotEnd) {
				slot.Available = false
				break
			}
		}

		slots = append(slots, slot)
	}

	return slots
}

// StartHours возвращает часы, доступные как начало бронирования:
// свободные слоты строго раньше 21:00 (слот 21:00 началом быть не может -
// для него не существует допустимого конца внутри сетки)
func StartHours(slots []domain.Slot) []int {
	hours := make([]int, 0, len(slots))
	for _, slot := range slots {
		if slot.Available && slot.Hour < domain.LastStartHour {
			hours = append(hours, slot.Hour)
		}
	}
	return hours
}

// EndHours возвращает часы, доступные как конец бронирования при выбранном начале:
// свободные слоты строго позже startHour, плюс 22:00 как неявная граница закрытия
// (слота для 22:00 не существует; бронирование до 22:00 занимает слот 21:00,
// поэтому 22:00 предлагается, только когда слот 21:00 свободен)
func EndHours(slots []domain.Slot, startHour int) []int {
	hours := make([]int, 0, len(slots)+1)
	lastSlotFree := false

	for _, slot := range slots {
		if slot.Hour > startHour && slot.Available {
			hours = append(hours, slot.Hour)
		}
		if slot.Hour == domain.LastStartHour {
			lastSlotFree = slot.Available
		}
	}

	if startHour < domain.LastStartHour && lastSlotFree {
		hours = append(hours, domain.CloseHour)
	}

	return hours
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
