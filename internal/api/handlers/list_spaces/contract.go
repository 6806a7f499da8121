package list_spaces

import (
	"context"

	"github.com/m04kA/SMC-SpaceService/internal/auth"
	spacesModels "github.com/m04kA/SMC-SpaceService/internal/service/spaces/models"
)

type SpacesService interface {
	List(ctx context.Context, principal auth.Principal) (*spacesModels.SpaceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
