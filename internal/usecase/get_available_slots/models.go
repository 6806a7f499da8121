package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/domain"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	SpaceID   uuid.UUID // ID пространства
	Date      time.Time // Дата (время суток игнорируется)
	StartHour *int      // Выбранный час начала (опционально) - для списка вариантов конца
}

// Response модель ответа с сеткой слотов и вариантами выбора
type Response struct {
	SpaceID    uuid.UUID     // ID пространства
	Date       time.Time     // Дата, на которую построена сетка
	Slots      []domain.Slot // Все 14 почасовых слотов с признаком доступности
	StartHours []int         // Часы, доступные как начало бронирования
	EndHours   []int         // Часы, доступные как конец (заполнено, если StartHour задан)
}
