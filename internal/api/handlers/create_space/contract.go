package create_space

import (
	"context"

	spacesModels "github.com/m04kA/SMC-SpaceService/internal/service/spaces/models"
)

type SpacesService interface {
	Create(ctx context.Context, req *spacesModels.CreateSpaceRequest) (*spacesModels.SpaceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
