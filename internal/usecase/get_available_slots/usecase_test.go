package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaceService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-SpaceService/internal/infra/storage/space"
)

var testNow = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	filter   domain.BookingsFilter
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.filter = filter
	return r.bookings, nil
}

type fakeSpaceRepo struct {
	space *domain.Space
	err   error
}

func (r *fakeSpaceRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Space, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.space, nil
}

type fixedTime struct{ now time.Time }

func (p *fixedTime) Now() time.Time { return p.now }

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func testSpace() *domain.Space {
	return &domain.Space{
		ID:       uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Name:     "Sala de Reunião A",
		IsActive: true,
	}
}

func newTestUseCase(bookingRepo *fakeBookingRepo, spRepo *fakeSpaceRepo) *UseCase {
	uc := NewUseCase(bookingRepo, spRepo, &nopLogger{})
	uc.timeProvider = &fixedTime{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{bookingAt(10, 12, domain.StatusConfirmed)}}
	uc := newTestUseCase(repo, &fakeSpaceRepo{space: testSpace()})

	resp, err := uc.Execute(context.Background(), &Request{
		SpaceID: testSpace().ID,
		Date:    testDate,
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, domain.SlotsPerDay)

	avail := availability(resp.Slots)
	assert.False(t, avail[10])
	assert.False(t, avail[11])
	assert.True(t, avail[12])
	assert.NotContains(t, resp.StartHours, 10)
	assert.Empty(t, resp.EndHours)

	// Запрашивается окно выбранного дня
	require.NotNil(t, repo.filter.StartDate)
	require.NotNil(t, repo.filter.EndDate)
	assert.Equal(t, testDate, *repo.filter.StartDate)
	assert.Equal(t, testDate.AddDate(0, 0, 1), *repo.filter.EndDate)
	assert.False(t, repo.filter.IncludeInactive)
}

func TestExecute_WithStartHour(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{bookingAt(14, 15, domain.StatusPending)}}
	uc := newTestUseCase(repo, &fakeSpaceRepo{space: testSpace()})

	startHour := 10
	resp, err := uc.Execute(context.Background(), &Request{
		SpaceID:   testSpace().ID,
		Date:      testDate,
		StartHour: &startHour,
	})

	require.NoError(t, err)
	assert.Contains(t, resp.EndHours, 11)
	assert.NotContains(t, resp.EndHours, 14)
	assert.Contains(t, resp.EndHours, domain.CloseHour)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSpaceRepo{space: testSpace()})

	_, err := uc.Execute(context.Background(), &Request{
		SpaceID: testSpace().ID,
		Date:    testNow.AddDate(0, 0, -1),
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TodayAllowed(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSpaceRepo{space: testSpace()})

	_, err := uc.Execute(context.Background(), &Request{
		SpaceID: testSpace().ID,
		Date:    time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
}

func TestExecute_SpaceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSpaceRepo{err: spaceRepo.ErrSpaceNotFound})

	_, err := uc.Execute(context.Background(), &Request{SpaceID: uuid.New(), Date: testDate})
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestExecute_SpaceInactive(t *testing.T) {
	space := testSpace()
	space.IsActive = false
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSpaceRepo{space: space})

	_, err := uc.Execute(context.Background(), &Request{SpaceID: space.ID, Date: testDate})
	assert.ErrorIs(t, err, ErrSpaceInactive)
}

func TestExecute_InvalidStartHour(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSpaceRepo{space: testSpace()})

	for _, hour := range []int{7, 21, 22} {
		startHour := hour
		_, err := uc.Execute(context.Background(), &Request{
			SpaceID:   testSpace().ID,
			Date:      testDate,
			StartHour: &startHour,
		})
		assert.ErrorIs(t, err, ErrInvalidInput, "hour %d", hour)
	}
}
