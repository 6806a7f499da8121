package domain

import "fmt"

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// statusMeta единая таблица отображения статусов
// Все места, где статус показывается пользователю (ответы API, админка),
// берут label и color отсюда, а не из локальных switch'ей
var statusMeta = map[BookingStatus]struct {
	Label string
	Color string
}{
	StatusPending:   {Label: "Aguardando confirmação", Color: "secondary"},
	StatusConfirmed: {Label: "Confirmada", Color: "default"},
	StatusCompleted: {Label: "Concluída", Color: "outline"},
	StatusCancelled: {Label: "Cancelada", Color: "destructive"},
}

// validTransitions допустимые переходы статусов:
// pending -> confirmed (подтверждение оплаты)
// pending -> cancelled
// confirmed -> completed (отметка администратором)
// confirmed -> cancelled
// completed и cancelled - терминальные
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ParseBookingStatus парсит статус из строки
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if _, ok := statusMeta[status]; !ok {
		return "", fmt.Errorf("unknown booking status: %q", s)
	}
	return status, nil
}

// IsValid возвращает true для известного статуса
func (s BookingStatus) IsValid() bool {
	_, ok := statusMeta[s]
	return ok
}

// IsTerminal возвращает true для терминального статуса
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo проверяет допустимость перехода статуса
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Label возвращает отображаемое название статуса
func (s BookingStatus) Label() string {
	return statusMeta[s].Label
}

// Color возвращает вариант оформления для статуса
func (s BookingStatus) Color() string {
	return statusMeta[s].Color
}

// ActiveStatuses статусы, занимающие слот
// Используются при подсчёте доступности и проверке конфликтов
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
