package get_space

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/auth"
	spacesModels "github.com/m04kA/SMC-SpaceService/internal/service/spaces/models"
)

type SpacesService interface {
	GetByID(ctx context.Context, id uuid.UUID, principal auth.Principal) (*spacesModels.SpaceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
