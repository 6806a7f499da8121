package update_space

import (
	"context"

	"github.com/google/uuid"

	spacesModels "github.com/m04kA/SMC-SpaceService/internal/service/spaces/models"
)

type SpacesService interface {
	Update(ctx context.Context, id uuid.UUID, req *spacesModels.UpdateSpaceRequest) (*spacesModels.SpaceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
