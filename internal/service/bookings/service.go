package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SpaceService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SpaceService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только свои бронирования, администратор - любые
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, principal auth.Principal) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, principal.UserID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !principal.CanAccessBooking(booking.UserID) {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", principal.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, status=%v", req.UserID, req.Status)

	// Чужую историю видит только администратор
	if !req.Principal.CanAccessBooking(req.UserID) {
		s.logger.Warn("GetUserBookings: access denied for user=%s to history of user=%s",
			req.Principal.UserID, req.UserID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// ListBookings получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по пространству, пользователю, периоду и статусу
// Доступно только администраторам
func (s *Service) ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListBookings: fetching bookings for admin=%s, includeInactive=%t",
		req.Principal.UserID, req.IncludeInactive)

	if !req.Principal.IsAdmin() {
		s.logger.Warn("ListBookings: access denied for user=%s", req.Principal.UserID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Владелец может отменить своё бронирование не позднее, чем за два часа до начала.
// Администратор может отменить любое нетерминальное бронирование без ограничения по времени
func (s *Service) Cancel(ctx context.Context, bookingID uuid.UUID, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, req.Principal.UserID)

	booking, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return err
	}

	if !req.Principal.CanAccessBooking(booking.UserID) {
		s.logger.Warn("Cancel: access denied for user=%s to booking id=%s", req.Principal.UserID, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Правило двух часов действует только для владельца
	if !req.Principal.IsAdmin() && !booking.CanBeCancelledByOwner(s.timeProvider.Now()) {
		s.logger.Warn("Cancel: booking id=%s starts too soon to be cancelled by owner", bookingID)
		return ErrTooLateToCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.Reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}

// ConfirmPayment подтверждает оплату бронирования владельцем
// Переводит бронирование из pending в confirmed
func (s *Service) ConfirmPayment(ctx context.Context, bookingID uuid.UUID, principal auth.Principal) (*models.BookingResponse, error) {
	s.logger.Info("ConfirmPayment: confirming booking id=%s by user=%s", bookingID, principal.UserID)

	booking, err := s.getBooking(ctx, "ConfirmPayment", bookingID)
	if err != nil {
		return nil, err
	}

	if !principal.CanAccessBooking(booking.UserID) {
		s.logger.Warn("ConfirmPayment: access denied for user=%s to booking id=%s", principal.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	if booking.Status != domain.StatusPending {
		s.logger.Warn("ConfirmPayment: booking id=%s is not pending, status=%s", bookingID, booking.Status)
		return nil, ErrNotPending
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusConfirmed); err != nil {
		s.logger.Error("ConfirmPayment: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ConfirmPayment - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusConfirmed

	s.logger.Info("ConfirmPayment: successfully confirmed booking id=%s", bookingID)
	return models.FromDomainBooking(booking), nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только администраторам. Переход проверяется по машине состояний;
// флаг Override позволяет установить любой известный статус напрямую
func (s *Service) UpdateStatus(ctx context.Context, bookingID uuid.UUID, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s by user=%s, override=%t",
		bookingID, req.Status, req.Principal.UserID, req.Override)

	if !req.Principal.IsAdmin() {
		s.logger.Warn("UpdateStatus: access denied for user=%s", req.Principal.UserID)
		return ErrAccessDenied
	}

	booking, err := s.getBooking(ctx, "UpdateStatus", bookingID)
	if err != nil {
		return err
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, bookingID)
		return ErrInvalidStatus
	}

	if !req.Override && !booking.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for booking id=%s",
			booking.Status, newStatus, bookingID)
		return ErrInvalidTransition
	}

	// Отмена проходит через Cancel, чтобы зафиксировать причину и время отмены
	if newStatus == domain.StatusCancelled {
		var reason string
		if req.Reason != nil {
			reason = *req.Reason
		}
		err = s.bookingRepo.Cancel(ctx, bookingID, reason)
	} else {
		err = s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus)
	}
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%s to status=%s", bookingID, newStatus)
	return nil
}

// getBooking получает бронирование по ID с маппингом ошибок репозитория
func (s *Service) getBooking(ctx context.Context, op string, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
