package create_space

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SpaceService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/service/spaces"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidSpace       = "dados do espaço inválidos"
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

// Handle POST /api/v1/spaces
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /spaces - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(principal))
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrAccessDenied):
			h.logger.Warn("POST /spaces - Access denied: user_id=%s", principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, spaces.ErrInvalidInput):
			h.logger.Warn("POST /spaces - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSpace)

		default:
			h.logger.Error("POST /spaces - Failed to create space: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /spaces - Space created: space_id=%s, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
