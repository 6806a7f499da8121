package list_profiles

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SpaceService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/service/profiles"
)

const msgAccessDenied = "acesso negado"

type Handler struct {
	service ProfilesService
	logger  Logger
}

func NewHandler(service ProfilesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/profiles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	result, err := h.service.List(r.Context(), principal)
	if err != nil {
		switch {
		case errors.Is(err, profiles.ErrAccessDenied):
			h.logger.Warn("GET /admin/profiles - Access denied: user_id=%s", principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /admin/profiles - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/profiles - %d profiles listed", len(result.Profiles))
	handlers.RespondJSON(w, http.StatusOK, result)
}
