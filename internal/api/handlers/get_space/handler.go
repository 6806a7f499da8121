package get_space

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

// Handle GET /api/v1/spaces/{spaceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spaceID, err := uuid.Parse(mux.Vars(r)["spaceId"])
	if err != nil {
		h.logger.Warn("GET /spaces/{spaceId} - Invalid space id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	principal, _ := auth.FromContext(r.Context())

	result, err := h.service.GetByID(r.Context(), spaceID, principal)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/{spaceId} - Space not found: space_id=%s", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)
		default:
			h.logger.Error("GET /spaces/{spaceId} - Failed to get space: space_id=%s, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /spaces/{spaceId} - Space fetched: space_id=%s", spaceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
