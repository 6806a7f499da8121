package create_booking

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

var (
	testNow    = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	testDate   = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	testUserID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
)

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	created   *domain.Booking
	createErr error
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	out := *booking
	out.ID = uuid.New()
	out.CreatedAt = testNow
	out.UpdatedAt = testNow
	r.created = &out
	return &out, nil
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
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

type fakeTxManager struct{}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (p *fixedTime) Now() time.Time { return p.now }

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func testSpace() *domain.Space {
	return &domain.Space{
		ID:           uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Name:         "Sala de Reunião A",
		Capacity:     8,
		PricePerHour: 50,
		IsActive:     true,
	}
}

func newTestUseCase(bookingRepo *fakeBookingRepo, spRepo *fakeSpaceRepo) *UseCase {
	uc := NewUseCase(bookingRepo, spRepo, &fakeTxManager{}, &nopLogger{})
	uc.timeProvider = &fixedTime{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:    testUserID,
		SpaceID:   testSpace().ID,
		Date:      testDate,
		StartHour: 10,
		EndHour:   13,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeSpaceRepo{space: testSpace()})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, domain.StatusPending, resp.Booking.Status)
	// 3 часа по 50 за час
	assert.Equal(t, 150.0, resp.Booking.TotalPrice)
	assert.Equal(t, time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), resp.Booking.StartDatetime)
	assert.Equal(t, time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC), resp.Booking.EndDatetime)
	assert.Equal(t, testUserID, resp.Booking.UserID)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "missing user",
			mutate:  func(req *Request) { req.UserID = uuid.Nil },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing space",
			mutate:  func(req *Request) { req.SpaceID = uuid.Nil },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing date",
			mutate:  func(req *Request) { req.Date = time.Time{} },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "start before opening",
			mutate:  func(req *Request) { req.StartHour = 7 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "start at last slot",
			mutate:  func(req *Request) { req.StartHour = 21; req.EndHour = 22 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "end after closing",
			mutate:  func(req *Request) { req.EndHour = 23 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "start equals end",
			mutate:  func(req *Request) { req.StartHour = 10; req.EndHour = 10 },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "start after end",
			mutate:  func(req *Request) { req.StartHour = 14; req.EndHour = 12 },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "nine hours",
			mutate:  func(req *Request) { req.StartHour = 8; req.EndHour = 17 },
			wantErr: ErrMaxDurationExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{}, &fakeSpaceRepo{space: testSpace()})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_EightHoursAllowed(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSpaceRepo{space: testSpace()})

	req := validRequest()
	req.StartHour = 8
	req.EndHour = 16

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 400.0, resp.Booking.TotalPrice)
}

func TestExecute_MinNotice(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSpaceRepo{space: testSpace()})

	// Сейчас 9:30 того же дня - до начала в 10:00 остается всего 30 минут
	uc.timeProvider = &fixedTime{now: time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)}

	req := validRequest()
	req.StartHour = 10

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToBook)

	// Ровно за час до начала бронировать еще можно
	uc.timeProvider = &fixedTime{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}

	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_SpaceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSpaceRepo{err: spaceRepo.ErrSpaceNotFound})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestExecute_SpaceInactive(t *testing.T) {
	space := testSpace()
	space.IsActive = false
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSpaceRepo{space: space})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSpaceInactive)
}

func TestExecute_Conflict(t *testing.T) {
	tests := []struct {
		name      string
		startHour int
		endHour   int
		wantErr   error
	}{
		{name: "identical interval", startHour: 10, endHour: 13, wantErr: ErrSlotNotAvailable},
		{name: "partial overlap", startHour: 12, endHour: 15, wantErr: ErrSlotNotAvailable},
		{name: "contained", startHour: 11, endHour: 12, wantErr: ErrSlotNotAvailable},
		{name: "abutting after", startHour: 13, endHour: 15, wantErr: nil},
		{name: "abutting before", startHour: 8, endHour: 10, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := &domain.Booking{
				ID:            uuid.New(),
				SpaceID:       testSpace().ID,
				StartDatetime: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
				EndDatetime:   time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC),
				Status:        domain.StatusConfirmed,
			}
			repo := &fakeBookingRepo{bookings: []*domain.Booking{existing}}
			uc := newTestUseCase(repo, &fakeSpaceRepo{space: testSpace()})

			req := validRequest()
			req.StartHour = tt.startHour
			req.EndHour = tt.endHour

			_, err := uc.Execute(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, repo.created)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, repo.created)
			}
		})
	}
}
