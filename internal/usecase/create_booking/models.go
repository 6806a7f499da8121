package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    uuid.UUID // ID пользователя-владельца (из аутентификации)
	SpaceID   uuid.UUID // ID пространства
	Date      time.Time // Дата бронирования (время суток игнорируется)
	StartHour int       // Час начала (8..20)
	EndHour   int       // Час конца (9..22)
	Notes     *string   // Комментарий пользователя (опционально)
}

// Start возвращает момент начала бронирования
func (r *Request) Start() time.Time {
	return time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), r.StartHour, 0, 0, 0, r.Date.Location())
}

// End возвращает момент конца бронирования
func (r *Request) End() time.Time {
	return time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), r.EndHour, 0, 0, 0, r.Date.Location())
}

// Hours возвращает длительность бронирования в часах
func (r *Request) Hours() int {
	return r.EndHour - r.StartHour
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
