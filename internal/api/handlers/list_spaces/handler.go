package list_spaces

import (
	"net/http"

	"github.com/m04kA/SMC-SpaceService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceService/internal/auth"
	spacesModels "github.com/m04kA/SMC-SpaceService/internal/service/spaces/models"
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

// Handle GET /api/v1/spaces
// Публичный маршрут: без аутентификации видны только активные пространства,
// администратор видит все. Параметр ?active=true ограничивает выдачу активными
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Для анонимного запроса principal нулевой - не администратор
	principal, _ := auth.FromContext(r.Context())

	result, err := h.service.List(r.Context(), principal)
	if err != nil {
		h.logger.Error("GET /spaces - Failed to list spaces: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if r.URL.Query().Get("active") == "true" {
		result = onlyActive(result)
	}

	h.logger.Info("GET /spaces - Listed %d spaces", len(result.Spaces))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// onlyActive оставляет в ответе только активные пространства
func onlyActive(list *spacesModels.SpaceListResponse) *spacesModels.SpaceListResponse {
	filtered := &spacesModels.SpaceListResponse{Spaces: make([]spacesModels.SpaceResponse, 0, len(list.Spaces))}
	for _, s := range list.Spaces {
		if s.IsActive {
			filtered.Spaces = append(filtered.Spaces, s)
		}
	}
	return filtered
}
