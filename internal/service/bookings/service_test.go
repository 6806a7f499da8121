package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SpaceService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SpaceService/internal/service/bookings/models"
	"github.com/m04kA/SMC-SpaceService/pkg/ptr"
)

var (
	testNow     = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	ownerID     = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	otherUserID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	adminID     = uuid.MustParse("99999999-9999-9999-9999-999999999999")
)

func owner() auth.Principal {
	return auth.Principal{UserID: ownerID, Role: domain.RoleUser}
}

func otherUser() auth.Principal {
	return auth.Principal{UserID: otherUserID, Role: domain.RoleUser}
}

func admin() auth.Principal {
	return auth.Principal{UserID: adminID, Role: domain.RoleAdmin}
}

type fakeRepo struct {
	booking       *domain.Booking
	bookings      []*domain.Booking
	getErr        error
	updatedStatus *domain.BookingStatus
	cancelled     bool
	cancelReason  string
	filter        *domain.BookingsFilter
}

func (r *fakeRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Booking, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.booking, nil
}

func (r *fakeRepo) GetByUserID(_ context.Context, _ uuid.UUID, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return r.bookings, nil
}

func (r *fakeRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.filter = &filter
	return r.bookings, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status domain.BookingStatus) error {
	r.updatedStatus = &status
	return nil
}

func (r *fakeRepo) Cancel(_ context.Context, _ uuid.UUID, reason string) error {
	r.cancelled = true
	r.cancelReason = reason
	return nil
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (p *fixedTime) Now() time.Time { return p.now }

// testBooking бронирование владельца, начинающееся через 3 часа
func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            uuid.New(),
		UserID:        ownerID,
		SpaceID:       uuid.New(),
		StartDatetime: testNow.Add(3 * time.Hour),
		EndDatetime:   testNow.Add(5 * time.Hour),
		TotalPrice:    100,
		Status:        status,
	}
}

func newTestService(repo *fakeRepo) *Service {
	svc := NewService(repo, &nopLogger{})
	svc.timeProvider = &fixedTime{now: testNow}
	return svc
}

func TestGetByID(t *testing.T) {
	booking := testBooking(domain.StatusConfirmed)
	repo := &fakeRepo{booking: booking}
	svc := newTestService(repo)

	t.Run("owner", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), booking.ID, owner())
		require.NoError(t, err)
		assert.Equal(t, booking.ID, resp.ID)
		assert.Equal(t, "confirmed", resp.Status)
		assert.Equal(t, "Confirmada", resp.StatusLabel)
	})

	t.Run("admin", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), booking.ID, admin())
		assert.NoError(t, err)
	})

	t.Run("other user", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), booking.ID, otherUser())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestService(&fakeRepo{getErr: bookingRepo.ErrBookingNotFound})
		_, err := svc.GetByID(context.Background(), uuid.New(), owner())
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestGetUserBookings(t *testing.T) {
	repo := &fakeRepo{bookings: []*domain.Booking{testBooking(domain.StatusPending)}}
	svc := newTestService(repo)

	t.Run("own history", func(t *testing.T) {
		resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
			UserID:    ownerID,
			Principal: owner(),
		})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 1)
	})

	t.Run("foreign history denied", func(t *testing.T) {
		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
			UserID:    ownerID,
			Principal: otherUser(),
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin reads any history", func(t *testing.T) {
		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
			UserID:    ownerID,
			Principal: admin(),
		})
		assert.NoError(t, err)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
			UserID:    ownerID,
			Status:    ptr.Ptr("unknown"),
			Principal: owner(),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestListBookings(t *testing.T) {
	t.Run("admin with filter", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		spaceID := uuid.New()
		_, err := svc.ListBookings(context.Background(), &models.ListBookingsRequest{
			SpaceID:         &spaceID,
			Status:          ptr.Ptr("confirmed"),
			IncludeInactive: true,
			Principal:       admin(),
		})

		require.NoError(t, err)
		require.NotNil(t, repo.filter)
		assert.Equal(t, spaceID, *repo.filter.SpaceID)
		assert.Equal(t, domain.StatusConfirmed, *repo.filter.Status)
		assert.True(t, repo.filter.IncludeInactive)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		svc := newTestService(&fakeRepo{})
		_, err := svc.ListBookings(context.Background(), &models.ListBookingsRequest{Principal: owner()})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestCancel(t *testing.T) {
	t.Run("owner more than two hours before start", func(t *testing.T) {
		repo := &fakeRepo{booking: testBooking(domain.StatusConfirmed)}
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), repo.booking.ID, &models.CancelBookingRequest{
			Reason:    "mudança de planos",
			Principal: owner(),
		})

		require.NoError(t, err)
		assert.True(t, repo.cancelled)
		assert.Equal(t, "mudança de planos", repo.cancelReason)
	})

	t.Run("owner exactly two hours before start", func(t *testing.T) {
		booking := testBooking(domain.StatusConfirmed)
		booking.StartDatetime = testNow.Add(2 * time.Hour)
		repo := &fakeRepo{booking: booking}
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), booking.ID, &models.CancelBookingRequest{Principal: owner()})
		assert.ErrorIs(t, err, ErrTooLateToCancel)
		assert.False(t, repo.cancelled)
	})

	t.Run("admin ignores two hour rule", func(t *testing.T) {
		booking := testBooking(domain.StatusConfirmed)
		booking.StartDatetime = testNow.Add(30 * time.Minute)
		repo := &fakeRepo{booking: booking}
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), booking.ID, &models.CancelBookingRequest{Principal: admin()})
		assert.NoError(t, err)
		assert.True(t, repo.cancelled)
	})

	t.Run("terminal status", func(t *testing.T) {
		repo := &fakeRepo{booking: testBooking(domain.StatusCompleted)}
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), repo.booking.ID, &models.CancelBookingRequest{Principal: admin()})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("other user denied", func(t *testing.T) {
		repo := &fakeRepo{booking: testBooking(domain.StatusPending)}
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), repo.booking.ID, &models.CancelBookingRequest{Principal: otherUser()})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestConfirmPayment(t *testing.T) {
	t.Run("pending confirmed by owner", func(t *testing.T) {
		repo := &fakeRepo{booking: testBooking(domain.StatusPending)}
		svc := newTestService(repo)

		resp, err := svc.ConfirmPayment(context.Background(), repo.booking.ID, owner())

		require.NoError(t, err)
		require.NotNil(t, repo.updatedStatus)
		assert.Equal(t, domain.StatusConfirmed, *repo.updatedStatus)
		assert.Equal(t, "confirmed", resp.Status)
	})

	t.Run("already confirmed", func(t *testing.T) {
		repo := &fakeRepo{booking: testBooking(domain.StatusConfirmed)}
		svc := newTestService(repo)

		_, err := svc.ConfirmPayment(context.Background(), repo.booking.ID, owner())
		assert.ErrorIs(t, err, ErrNotPending)
	})

	t.Run("other user denied", func(t *testing.T) {
		repo := &fakeRepo{booking: testBooking(domain.StatusPending)}
		svc := newTestService(repo)

		_, err := svc.ConfirmPayment(context.Background(), repo.booking.ID, otherUser())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		repo := &fakeRepo{booking: testBooking(domain.StatusConfirmed)}
		svc := newTestService(repo)

		err := svc.UpdateStatus(context.Background(), repo.booking.ID, &models.UpdateStatusRequest{
			Status:    "completed",
			Principal: admin(),
		})

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, *repo.updatedStatus)
	})

	t.Run("invalid transition without override", func(t *testing.T) {
		repo := &fakeRepo{booking: testBooking(domain.StatusCompleted)}
		svc := newTestService(repo)

		err := svc.UpdateStatus(context.Background(), repo.booking.ID, &models.UpdateStatusRequest{
			Status:    "pending",
			Principal: admin(),
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("override bypasses state machine", func(t *testing.T) {
		repo := &fakeRepo{booking: testBooking(domain.StatusCompleted)}
		svc := newTestService(repo)

		err := svc.UpdateStatus(context.Background(), repo.booking.ID, &models.UpdateStatusRequest{
			Status:    "pending",
			Override:  true,
			Principal: admin(),
		})

		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, *repo.updatedStatus)
	})

	t.Run("cancellation records reason", func(t *testing.T) {
		repo := &fakeRepo{booking: testBooking(domain.StatusConfirmed)}
		svc := newTestService(repo)

		err := svc.UpdateStatus(context.Background(), repo.booking.ID, &models.UpdateStatusRequest{
			Status:    "cancelled",
			Reason:    ptr.Ptr("espaço em manutenção"),
			Principal: admin(),
		})

		require.NoError(t, err)
		assert.True(t, repo.cancelled)
		assert.Equal(t, "espaço em manutenção", repo.cancelReason)
	})

	t.Run("unknown status", func(t *testing.T) {
		repo := &fakeRepo{booking: testBooking(domain.StatusPending)}
		svc := newTestService(repo)

		err := svc.UpdateStatus(context.Background(), repo.booking.ID, &models.UpdateStatusRequest{
			Status:    "archived",
			Override:  true,
			Principal: admin(),
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		repo := &fakeRepo{booking: testBooking(domain.StatusPending)}
		svc := newTestService(repo)

		err := svc.UpdateStatus(context.Background(), repo.booking.ID, &models.UpdateStatusRequest{
			Status:    "confirmed",
			Principal: owner(),
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
