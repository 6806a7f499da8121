package delete_space

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/auth"
)

type SpacesService interface {
	Delete(ctx context.Context, id uuid.UUID, principal auth.Principal) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
