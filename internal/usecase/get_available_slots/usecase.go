package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-SpaceService/internal/infra/storage/space"
	"github.com/m04kA/SMC-SpaceService/pkg/ptr"
)

// UseCase use case для получения сетки доступных слотов
type UseCase struct {
	bookingRepo  BookingRepository
	spaceRepo    SpaceRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	spaceRepo SpaceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		spaceRepo:    spaceRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: space=%s, date=%s",
		req.SpaceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Пространство должно существовать и быть активным
	space, err := uc.spaceRepo.GetByID(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("GetAvailableSlots: space id=%s not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get space id=%s: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	if !space.IsActive {
		uc.logger.Warn("GetAvailableSlots: space id=%s is not active", req.SpaceID)
		return nil, ErrSpaceInactive
	}

	// 4. Получаем активные бронирования пространства, начинающиеся в окне выбранного дня
	dayStart, dayEnd := dayWindow(req.Date)
	filter := domain.BookingsFilter{
		SpaceID:   ptr.Ptr(req.SpaceID),
		StartDate: &dayStart,
		EndDate:   &dayEnd,
		// Только pending и confirmed
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Строим сетку и списки вариантов выбора
	slots := BuildSlots(req.Date, bookings)

	response := &Response{
		SpaceID:    req.SpaceID,
		Date:       req.Date,
		Slots:      slots,
		StartHours: StartHours(slots),
		EndHours:   []int{},
	}

	if req.StartHour != nil {
		response.EndHours = EndHours(slots, *req.StartHour)
	}

	uc.logger.Info("GetAvailableSlots: space=%s, date=%s, %d start options",
		req.SpaceID, req.Date.Format(domain.DateFormat), len(response.StartHours))

	return response, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SpaceID == uuid.Nil {
		return fmt.Errorf("%w: spaceID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartHour != nil && (*req.StartHour < domain.OpenHour || *req.StartHour >= domain.LastStartHour) {
		return fmt.Errorf("%w: startHour must be in [%d, %d)", ErrInvalidInput, domain.OpenHour, domain.LastStartHour)
	}

	return nil
}

// dayWindow возвращает окно [00:00 выбранного дня, 00:00 следующего дня)
func dayWindow(date time.Time) (time.Time, time.Time) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return dayStart, dayStart.AddDate(0, 0, 1)
}
