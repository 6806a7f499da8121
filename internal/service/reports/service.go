package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SpaceService/internal/domain"
	"github.com/m04kA/SMC-SpaceService/internal/service/reports/models"
)

// reportStatuses порядок статусов в отчете
var reportStatuses = []domain.BookingStatus{
	domain.StatusPending,
	domain.StatusConfirmed,
	domain.StatusCompleted,
	domain.StatusCancelled,
}

// Service сервис формирования сводных отчетов
type Service struct {
	bookingRepo  BookingRepository
	spaceRepo    SpaceRepository
	profileRepo  ProfileRepository
	timeProvider TimeProvider
	logger       Logger
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(
	bookingRepo BookingRepository,
	spaceRepo SpaceRepository,
	profileRepo ProfileRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		spaceRepo:    spaceRepo,
		profileRepo:  profileRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Generate формирует сводный отчет: бронирования по статусам, выручка,
// количество пространств и пользователей. Доступно только администраторам
func (s *Service) Generate(ctx context.Context, req *models.GenerateReportRequest) (*models.ReportResponse, error) {
	s.logger.Info("Generate: building report for admin=%s", req.Principal.UserID)

	if !req.Principal.CanViewReports() {
		s.logger.Warn("Generate: access denied for user=%s", req.Principal.UserID)
		return nil, ErrAccessDenied
	}

	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		s.logger.Warn("Generate: invalid period %s - %s", req.From, req.To)
		return nil, ErrInvalidPeriod
	}

	counts, err := s.bookingRepo.StatusCounts(ctx)
	if err != nil {
		s.logger.Error("Generate: failed to get status counts: %v", err)
		return nil, fmt.Errorf("%w: Generate - status counts: %v", ErrInternal, err)
	}

	revenue, err := s.bookingRepo.Revenue(ctx, req.From, req.To)
	if err != nil {
		s.logger.Error("Generate: failed to get revenue: %v", err)
		return nil, fmt.Errorf("%w: Generate - revenue: %v", ErrInternal, err)
	}

	totalSpaces, err := s.spaceRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Generate: failed to count spaces: %v", err)
		return nil, fmt.Errorf("%w: Generate - space count: %v", ErrInternal, err)
	}

	totalProfiles, err := s.profileRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Generate: failed to count profiles: %v", err)
		return nil, fmt.Errorf("%w: Generate - profile count: %v", ErrInternal, err)
	}

	report := &models.ReportResponse{
		GeneratedAt:      s.timeProvider.Now(),
		PeriodFrom:       req.From,
		PeriodTo:         req.To,
		BookingsByStatus: make([]models.StatusCountResponse, 0, len(reportStatuses)),
		TotalRevenue:     revenue,
		TotalSpaces:      totalSpaces,
		TotalProfiles:    totalProfiles,
	}

	for _, status := range reportStatuses {
		count := counts[status]
		report.TotalBookings += count
		report.BookingsByStatus = append(report.BookingsByStatus, models.StatusCountResponse{
			Status: string(status),
			Label:  status.Label(),
			Count:  count,
		})
	}

	if req.From != nil && req.To != nil {
		inPeriod, err := s.bookingRepo.CountInPeriod(ctx, *req.From, *req.To)
		if err != nil {
			s.logger.Error("Generate: failed to count bookings in period: %v", err)
			return nil, fmt.Errorf("%w: Generate - period count: %v", ErrInternal, err)
		}
		report.BookingsInPeriod = &inPeriod
	}

	s.logger.Info("Generate: report ready, %d bookings, revenue=%.2f", report.TotalBookings, revenue)
	return report, nil
}
