package spaces

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-SpaceService/internal/infra/storage/space"
	"github.com/m04kA/SMC-SpaceService/internal/service/spaces/models"
	"github.com/m04kA/SMC-SpaceService/pkg/ptr"
)

var (
	userID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	adminID = uuid.MustParse("99999999-9999-9999-9999-999999999999")
)

func user() auth.Principal {
	return auth.Principal{UserID: userID, Role: domain.RoleUser}
}

func admin() auth.Principal {
	return auth.Principal{UserID: adminID, Role: domain.RoleAdmin}
}

type fakeRepo struct {
	space      *domain.Space
	getErr     error
	created    *domain.Space
	updated    *domain.Space
	imageURL   *string
	deleted    bool
	activeOnly *bool
}

func (r *fakeRepo) Create(_ context.Context, space *domain.Space) (*domain.Space, error) {
	out := *space
	out.ID = uuid.New()
	out.CreatedAt = time.Now()
	out.UpdatedAt = time.Now()
	r.created = &out
	return &out, nil
}

func (r *fakeRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Space, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.space, nil
}

func (r *fakeRepo) List(_ context.Context, activeOnly bool) ([]*domain.Space, error) {
	r.activeOnly = &activeOnly
	if r.space == nil {
		return nil, nil
	}
	return []*domain.Space{r.space}, nil
}

func (r *fakeRepo) Update(_ context.Context, space *domain.Space) error {
	r.updated = space
	return nil
}

func (r *fakeRepo) SetImageURL(_ context.Context, _ uuid.UUID, imageURL *string) error {
	r.imageURL = imageURL
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, _ uuid.UUID) error {
	r.deleted = true
	return nil
}

type fakeStorage struct {
	key         string
	contentType string
	url         string
}

func (s *fakeStorage) Upload(_ context.Context, key string, contentType string, _ io.Reader) (string, error) {
	s.key = key
	s.contentType = contentType
	s.url = "https://cdn.example.com/" + key
	return s.url, nil
}

func (s *fakeStorage) Delete(_ context.Context, _ string) error {
	return nil
}

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
		Resources:    []string{"projetor", "quadro branco"},
		IsActive:     true,
	}
}

func newTestService(repo *fakeRepo) (*Service, *fakeStorage) {
	storage := &fakeStorage{}
	return NewService(repo, storage, &nopLogger{}), storage
}

func TestCreate(t *testing.T) {
	t.Run("admin creates active space", func(t *testing.T) {
		repo := &fakeRepo{}
		svc, _ := newTestService(repo)

		resp, err := svc.Create(context.Background(), &models.CreateSpaceRequest{
			Name:         "Auditório",
			Capacity:     40,
			PricePerHour: 120,
			Principal:    admin(),
		})

		require.NoError(t, err)
		assert.True(t, resp.IsActive)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		assert.Equal(t, []string{}, resp.Resources)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		svc, _ := newTestService(&fakeRepo{})

		_, err := svc.Create(context.Background(), &models.CreateSpaceRequest{
			Name:      "Auditório",
			Capacity:  40,
			Principal: user(),
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("validation", func(t *testing.T) {
		svc, _ := newTestService(&fakeRepo{})

		tests := []struct {
			name string
			req  models.CreateSpaceRequest
		}{
			{name: "empty name", req: models.CreateSpaceRequest{Capacity: 5}},
			{name: "zero capacity", req: models.CreateSpaceRequest{Name: "Sala"}},
			{name: "negative price", req: models.CreateSpaceRequest{Name: "Sala", Capacity: 5, PricePerHour: -1}},
			{name: "long name", req: models.CreateSpaceRequest{Name: strings.Repeat("a", domain.MaxNameLength+1), Capacity: 5}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				tt.req.Principal = admin()
				_, err := svc.Create(context.Background(), &tt.req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestGetByID(t *testing.T) {
	t.Run("active space visible to user", func(t *testing.T) {
		svc, _ := newTestService(&fakeRepo{space: testSpace()})

		resp, err := svc.GetByID(context.Background(), testSpace().ID, user())
		require.NoError(t, err)
		assert.Equal(t, "Sala de Reunião A", resp.Name)
	})

	t.Run("inactive space hidden from user", func(t *testing.T) {
		space := testSpace()
		space.IsActive = false
		svc, _ := newTestService(&fakeRepo{space: space})

		_, err := svc.GetByID(context.Background(), space.ID, user())
		assert.ErrorIs(t, err, ErrSpaceNotFound)
	})

	t.Run("inactive space visible to admin", func(t *testing.T) {
		space := testSpace()
		space.IsActive = false
		svc, _ := newTestService(&fakeRepo{space: space})

		_, err := svc.GetByID(context.Background(), space.ID, admin())
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _ := newTestService(&fakeRepo{getErr: spaceRepo.ErrSpaceNotFound})

		_, err := svc.GetByID(context.Background(), uuid.New(), user())
		assert.ErrorIs(t, err, ErrSpaceNotFound)
	})
}

func TestList(t *testing.T) {
	t.Run("user sees only active", func(t *testing.T) {
		repo := &fakeRepo{space: testSpace()}
		svc, _ := newTestService(repo)

		_, err := svc.List(context.Background(), user())
		require.NoError(t, err)
		require.NotNil(t, repo.activeOnly)
		assert.True(t, *repo.activeOnly)
	})

	t.Run("admin sees all", func(t *testing.T) {
		repo := &fakeRepo{space: testSpace()}
		svc, _ := newTestService(repo)

		_, err := svc.List(context.Background(), admin())
		require.NoError(t, err)
		require.NotNil(t, repo.activeOnly)
		assert.False(t, *repo.activeOnly)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		repo := &fakeRepo{space: testSpace()}
		svc, _ := newTestService(repo)

		resp, err := svc.Update(context.Background(), testSpace().ID, &models.UpdateSpaceRequest{
			PricePerHour: ptr.Ptr(80.0),
			IsActive:     ptr.Ptr(false),
			Principal:    admin(),
		})

		require.NoError(t, err)
		assert.Equal(t, 80.0, resp.PricePerHour)
		assert.False(t, resp.IsActive)
		// Остальные поля не тронуты
		assert.Equal(t, "Sala de Reunião A", resp.Name)
		require.NotNil(t, repo.updated)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		svc, _ := newTestService(&fakeRepo{space: testSpace()})

		_, err := svc.Update(context.Background(), testSpace().ID, &models.UpdateSpaceRequest{Principal: user()})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("update to invalid state rejected", func(t *testing.T) {
		svc, _ := newTestService(&fakeRepo{space: testSpace()})

		_, err := svc.Update(context.Background(), testSpace().ID, &models.UpdateSpaceRequest{
			Capacity:  ptr.Ptr(0),
			Principal: admin(),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDelete(t *testing.T) {
	t.Run("admin deletes", func(t *testing.T) {
		repo := &fakeRepo{space: testSpace()}
		svc, _ := newTestService(repo)

		err := svc.Delete(context.Background(), testSpace().ID, admin())
		require.NoError(t, err)
		assert.True(t, repo.deleted)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		repo := &fakeRepo{space: testSpace()}
		svc, _ := newTestService(repo)

		err := svc.Delete(context.Background(), testSpace().ID, user())
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.False(t, repo.deleted)
	})
}

func TestUploadImage(t *testing.T) {
	t.Run("jpeg upload", func(t *testing.T) {
		repo := &fakeRepo{space: testSpace()}
		svc, storage := newTestService(repo)

		resp, err := svc.UploadImage(context.Background(), testSpace().ID,
			"image/jpeg", strings.NewReader("fake-image"), admin())

		require.NoError(t, err)
		require.NotNil(t, resp.ImageURL)
		assert.Equal(t, storage.url, *resp.ImageURL)
		assert.Contains(t, storage.key, "spaces/"+testSpace().ID.String()+"/")
		assert.True(t, strings.HasSuffix(storage.key, ".jpg"))
		require.NotNil(t, repo.imageURL)
		assert.Equal(t, storage.url, *repo.imageURL)
	})

	t.Run("unsupported type", func(t *testing.T) {
		svc, _ := newTestService(&fakeRepo{space: testSpace()})

		_, err := svc.UploadImage(context.Background(), testSpace().ID,
			"application/pdf", strings.NewReader("data"), admin())
		assert.ErrorIs(t, err, ErrUnsupportedImage)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		svc, _ := newTestService(&fakeRepo{space: testSpace()})

		_, err := svc.UploadImage(context.Background(), testSpace().ID,
			"image/png", strings.NewReader("data"), user())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
