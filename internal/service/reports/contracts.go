package reports

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaceService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований для отчетов
type BookingRepository interface {
	// StatusCounts возвращает количество бронирований по каждому статусу
	StatusCounts(ctx context.Context) (map[domain.BookingStatus]int, error)
	// Revenue возвращает суммарную выручку по confirmed и completed бронированиям
	Revenue(ctx context.Context, from, to *time.Time) (float64, error)
	// CountInPeriod возвращает количество бронирований, начинающихся в периоде
	CountInPeriod(ctx context.Context, from, to time.Time) (int, error)
}

// SpaceRepository интерфейс репозитория пространств для отчетов
type SpaceRepository interface {
	Count(ctx context.Context) (int, error)
}

// ProfileRepository интерфейс репозитория профилей для отчетов
type ProfileRepository interface {
	Count(ctx context.Context) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
