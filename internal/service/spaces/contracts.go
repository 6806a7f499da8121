package spaces

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/domain"
)

// SpaceRepository интерфейс репозитория пространств
type SpaceRepository interface {
	Create(ctx context.Context, space *domain.Space) (*domain.Space, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Space, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Space, error)
	Update(ctx context.Context, space *domain.Space) error
	SetImageURL(ctx context.Context, id uuid.UUID, imageURL *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// FileStorage интерфейс объектного хранилища для изображений пространств
type FileStorage interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
