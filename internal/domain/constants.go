package domain

import "time"

// Сетка почасовых слотов - фиксированная бизнес-политика,
// не зависит от конфигурации конкретного пространства
const (
	OpenHour      = 8  // Первый слот начинается в 08:00
	LastStartHour = 21 // Последний слот начинается в 21:00
	CloseHour     = 22 // Неявная граница закрытия: конец последнего слота
	SlotsPerDay   = LastStartHour - OpenHour + 1
)

// Бизнес-правила бронирования
const (
	MaxBookingHours = 8                // Максимальная длительность бронирования
	MinNotice       = time.Hour        // Минимальное время между оформлением и началом
	CancelNotice    = 2 * time.Hour    // Владелец может отменить не позднее чем за 2 часа до начала
	MaxNotesLength  = 500
)

// Ограничения при создании/редактировании пространств
const (
	MinCapacity       = 1
	MaxNameLength     = 120
	MaxResourceTags   = 20
)

// Форматы даты и времени
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)
