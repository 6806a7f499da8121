package delete_space

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SpaceService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/service/spaces"
)

const (
	msgInvalidSpaceID = "identificador de espaço inválido"
	msgSpaceNotFound  = "espaço não encontrado"
	msgAccessDenied   = "acesso negado"
)

type Handler struct {
	service SpacesService
	logger  Logger
}

func NewHandler(service SpacesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/spaces/{spaceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	spaceID, err := uuid.Parse(mux.Vars(r)["spaceId"])
	if err != nil {
		h.logger.Warn("DELETE /spaces/{spaceId} - Invalid space id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	if err := h.service.Delete(r.Context(), spaceID, principal); err != nil {
		switch {
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("DELETE /spaces/{spaceId} - Space not found: space_id=%s", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, spaces.ErrAccessDenied):
			h.logger.Warn("DELETE /spaces/{spaceId} - Access denied: space_id=%s, user_id=%s",
				spaceID, principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /spaces/{spaceId} - Failed: space_id=%s, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /spaces/{spaceId} - Space deleted: space_id=%s", spaceID)
	handlers.RespondNoContent(w)
}
