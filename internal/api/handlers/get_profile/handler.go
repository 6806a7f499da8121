package get_profile

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SpaceService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/service/profiles"
)

const (
	msgInvalidProfileID = "identificador de usuário inválido"
	msgProfileNotFound  = "usuário não encontrado"
	msgAccessDenied     = "acesso negado"
)

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

// Handle GET /api/v1/profiles/{profileId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	profileID, err := uuid.Parse(mux.Vars(r)["profileId"])
	if err != nil {
		h.logger.Warn("GET /profiles/{profileId} - Invalid profile id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfileID)
		return
	}

	result, err := h.service.GetByID(r.Context(), profileID, principal)
	if err != nil {
		switch {
		case errors.Is(err, profiles.ErrProfileNotFound):
			h.logger.Warn("GET /profiles/{profileId} - Profile not found: profile_id=%s", profileID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, profiles.ErrAccessDenied):
			h.logger.Warn("GET /profiles/{profileId} - Access denied: profile_id=%s, user_id=%s",
				profileID, principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /profiles/{profileId} - Failed: profile_id=%s, error=%v", profileID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /profiles/{profileId} - Profile fetched: profile_id=%s", profileID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
