package profiles

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/domain"
)

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error
	UpdateAvatarURL(ctx context.Context, id uuid.UUID, avatarURL *string) error
}

// FileStorage интерфейс объектного хранилища для аватаров
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
