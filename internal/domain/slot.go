package domain

import "time"

// Slot почасовой слот в сетке бронирования
// Эфемерное значение: вычисляется по снапшоту бронирований и нигде не хранится
type Slot struct {
	Hour      int  // Час начала слота (8..21), интервал [Hour:00, Hour+1:00)
	Available bool // Свободен ли слот
}

// Start возвращает момент начала слота в указанную дату
func (s Slot) Start(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), s.Hour, 0, 0, 0, date.Location())
}

// End возвращает момент конца слота в указанную дату
func (s Slot) End(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), s.Hour+1, 0, 0, 0, date.Location())
}
