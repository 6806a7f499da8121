package update_space

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
	msgInvalidSpaceID     = "identificador de espaço inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidSpace       = "dados do espaço inválidos"
	msgSpaceNotFound      = "espaço não encontrado"
	msgAccessDenied       = "acesso negado"
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

// Handle PUT /api/v1/spaces/{spaceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	spaceID, err := uuid.Parse(mux.Vars(r)["spaceId"])
	if err != nil {
		h.logger.Warn("PUT /spaces/{spaceId} - Invalid space id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	var req UpdateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /spaces/{spaceId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), spaceID, req.ToServiceRequest(principal))
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("PUT /spaces/{spaceId} - Space not found: space_id=%s", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, spaces.ErrAccessDenied):
			h.logger.Warn("PUT /spaces/{spaceId} - Access denied: space_id=%s, user_id=%s",
				spaceID, principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, spaces.ErrInvalidInput):
			h.logger.Warn("PUT /spaces/{spaceId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSpace)

		default:
			h.logger.Error("PUT /spaces/{spaceId} - Failed: space_id=%s, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /spaces/{spaceId} - Space updated: space_id=%s", spaceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
