package list_profiles

import (
	"context"

	"github.com/m04kA/SMC-SpaceService/internal/auth"
	profilesModels "github.com/m04kA/SMC-SpaceService/internal/service/profiles/models"
)

type ProfilesService interface {
	List(ctx context.Context, principal auth.Principal) (*profilesModels.ProfileListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
