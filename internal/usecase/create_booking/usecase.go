package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SpaceService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-SpaceService/internal/infra/storage/space"
	"github.com/m04kA/SMC-SpaceService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	spaceRepo    SpaceRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	spaceRepo SpaceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		spaceRepo:    spaceRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка доступности и вставка выполняются в одной SERIALIZABLE транзакции:
// выборка бронирований дня блокирует строки через FOR UPDATE, поэтому два
// конкурентных запроса на один интервал не могут оба пройти проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, space=%s, date=%s, %d:00-%d:00",
		req.UserID, req.SpaceID, req.Date.Format(domain.DateFormat), req.StartHour, req.EndHour)

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Пространство должно существовать и быть активным
	space, err := uc.spaceRepo.GetByID(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("CreateBooking: space id=%s not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get space id=%s: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	if !space.IsActive {
		uc.logger.Warn("CreateBooking: space id=%s is not active", req.SpaceID)
		return nil, ErrSpaceInactive
	}

	start := req.Start()
	end := req.End()

	booking := &domain.Booking{
		UserID:        req.UserID,
		SpaceID:       req.SpaceID,
		StartDatetime: start,
		EndDatetime:   end,
		TotalPrice:    space.PriceFor(req.Hours()),
		Status:        domain.StatusPending,
		Notes:         req.Notes,
	}

	// 3. Проверяем доступность интервала и создаем бронирование атомарно
	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		dayStart, dayEnd := dayWindow(req.Date)
		filter := domain.BookingsFilter{
			SpaceID:   ptr.Ptr(req.SpaceID),
			StartDate: &dayStart,
			EndDate:   &dayEnd,
			// Конфликтуют только pending и confirmed
			IncludeInactive: false,
		}

		existing, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		for _, b := range existing {
			if b.Overlaps(start, end) {
				return ErrSlotNotAvailable
			}
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Warn("CreateBooking: space=%s, %s-%s is already booked",
				req.SpaceID, start.Format(time.RFC3339), end.Format(time.RFC3339))
			return nil, ErrSlotNotAvailable
		}
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateBooking: %v", err)
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: booking id=%s created, price=%.2f", created.ID, created.TotalPrice)

	return &Response{Booking: created}, nil
}

// dayWindow возвращает окно [00:00 выбранного дня, 00:00 следующего дня)
func dayWindow(date time.Time) (time.Time, time.Time) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return dayStart, dayStart.AddDate(0, 0, 1)
}
