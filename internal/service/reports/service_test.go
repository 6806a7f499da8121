package reports

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/domain"
	"github.com/m04kA/SMC-SpaceService/internal/service/reports/models"
)

var testNow = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

func admin() auth.Principal {
	return auth.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}
}

func user() auth.Principal {
	return auth.Principal{UserID: uuid.New(), Role: domain.RoleUser}
}

type fakeBookingRepo struct {
	counts   map[domain.BookingStatus]int
	revenue  float64
	inPeriod int
}

func (r *fakeBookingRepo) StatusCounts(_ context.Context) (map[domain.BookingStatus]int, error) {
	return r.counts, nil
}

func (r *fakeBookingRepo) Revenue(_ context.Context, _, _ *time.Time) (float64, error) {
	return r.revenue, nil
}

func (r *fakeBookingRepo) CountInPeriod(_ context.Context, _, _ time.Time) (int, error) {
	return r.inPeriod, nil
}

type fakeCounter struct{ count int }

func (r *fakeCounter) Count(_ context.Context) (int, error) {
	return r.count, nil
}

type fixedTime struct{ now time.Time }

func (p *fixedTime) Now() time.Time { return p.now }

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	bookingRepo := &fakeBookingRepo{
		counts: map[domain.BookingStatus]int{
			domain.StatusPending:   2,
			domain.StatusConfirmed: 5,
			domain.StatusCompleted: 10,
			domain.StatusCancelled: 3,
		},
		revenue:  1500,
		inPeriod: 7,
	}
	svc := NewService(bookingRepo, &fakeCounter{count: 4}, &fakeCounter{count: 25}, &nopLogger{})
	svc.timeProvider = &fixedTime{now: testNow}
	return svc
}

func TestGenerate(t *testing.T) {
	t.Run("full report", func(t *testing.T) {
		svc := newTestService()

		report, err := svc.Generate(context.Background(), &models.GenerateReportRequest{Principal: admin()})

		require.NoError(t, err)
		assert.Equal(t, testNow, report.GeneratedAt)
		assert.Equal(t, 20, report.TotalBookings)
		assert.Equal(t, 1500.0, report.TotalRevenue)
		assert.Equal(t, 4, report.TotalSpaces)
		assert.Equal(t, 25, report.TotalProfiles)
		assert.Nil(t, report.BookingsInPeriod)

		require.Len(t, report.BookingsByStatus, 4)
		assert.Equal(t, "pending", report.BookingsByStatus[0].Status)
		assert.Equal(t, 2, report.BookingsByStatus[0].Count)
		assert.Equal(t, "Aguardando confirmação", report.BookingsByStatus[0].Label)
	})

	t.Run("with period", func(t *testing.T) {
		svc := newTestService()

		from := testNow.AddDate(0, -1, 0)
		to := testNow
		report, err := svc.Generate(context.Background(), &models.GenerateReportRequest{
			From:      &from,
			To:        &to,
			Principal: admin(),
		})

		require.NoError(t, err)
		require.NotNil(t, report.BookingsInPeriod)
		assert.Equal(t, 7, *report.BookingsInPeriod)
	})

	t.Run("inverted period", func(t *testing.T) {
		svc := newTestService()

		from := testNow
		to := testNow.AddDate(0, -1, 0)
		_, err := svc.Generate(context.Background(), &models.GenerateReportRequest{
			From:      &from,
			To:        &to,
			Principal: admin(),
		})
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Generate(context.Background(), &models.GenerateReportRequest{Principal: user()})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
