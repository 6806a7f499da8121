package upload_space_image

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/domain"
	spacesModels "github.com/m04kA/SMC-SpaceService/internal/service/spaces/models"
)

type fakeSpacesService struct {
	called bool
	resp   *spacesModels.SpaceResponse
	err    error
}

func (s *fakeSpacesService) UploadImage(_ context.Context, id uuid.UUID, _ string, _ io.Reader, _ auth.Principal) (*spacesModels.SpaceResponse, error) {
	s.called = true
	if s.err != nil {
		return nil, s.err
	}
	if s.resp != nil {
		return s.resp, nil
	}
	return &spacesModels.SpaceResponse{ID: id}, nil
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

// multipartFile собирает multipart-тело с одним файлом заданного размера
func multipartFile(t *testing.T, size int) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "photo.jpg")
	require.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte{0xff}, size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func newUploadRequest(t *testing.T, spaceID uuid.UUID, size int) *http.Request {
	t.Helper()

	body, contentType := multipartFile(t, size)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/spaces/"+spaceID.String()+"/image", body)
	req.Header.Set("Content-Type", contentType)
	req = mux.SetURLVars(req, map[string]string{"spaceId": spaceID.String()})

	admin := auth.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}
	return req.WithContext(auth.WithPrincipal(req.Context(), admin))
}

func TestHandle_Upload(t *testing.T) {
	spaceID := uuid.New()

	t.Run("small file accepted", func(t *testing.T) {
		service := &fakeSpacesService{}
		h := NewHandler(service, &nopLogger{})
		rec := httptest.NewRecorder()

		h.Handle(rec, newUploadRequest(t, spaceID, 1024))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, service.called)
	})

	t.Run("file over limit rejected with 413", func(t *testing.T) {
		service := &fakeSpacesService{}
		h := NewHandler(service, &nopLogger{})
		rec := httptest.NewRecorder()

		h.Handle(rec, newUploadRequest(t, spaceID, maxImageSize+1))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.False(t, service.called)
		assert.Contains(t, rec.Body.String(), msgImageTooLarge)
	})

	t.Run("missing file field rejected with 400", func(t *testing.T) {
		service := &fakeSpacesService{}
		h := NewHandler(service, &nopLogger{})
		rec := httptest.NewRecorder()

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/spaces/"+spaceID.String()+"/image", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		req = mux.SetURLVars(req, map[string]string{"spaceId": spaceID.String()})
		admin := auth.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}
		req = req.WithContext(auth.WithPrincipal(req.Context(), admin))

		h.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, service.called)
	})
}
