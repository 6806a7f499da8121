package update_profile_role

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/auth"
	profilesModels "github.com/m04kA/SMC-SpaceService/internal/service/profiles/models"
)

type ProfilesService interface {
	UpdateRole(ctx context.Context, id uuid.UUID, role string, principal auth.Principal) (*profilesModels.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
