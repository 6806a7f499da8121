package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SpaceService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SpaceService/internal/usecase/get_available_slots"
)

const (
	msgInvalidSpaceID   = "identificador de espaço inválido"
	msgInvalidDate      = "data inválida, formato esperado YYYY-MM-DD"
	msgInvalidStartHour = "hora de início inválida"
	msgDateInPast       = "não é possível consultar datas passadas"
	msgSpaceNotFound    = "espaço não encontrado"
	msgSpaceInactive    = "espaço indisponível"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/{spaceId}/available-slots?date=YYYY-MM-DD&startHour=10
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spaceID, err := uuid.Parse(mux.Vars(r)["spaceId"])
	if err != nil {
		h.logger.Warn("GET /spaces/{spaceId}/available-slots - Invalid space id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /spaces/{spaceId}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailableSlots.Request{
		SpaceID: spaceID,
		Date:    date,
	}

	if raw := r.URL.Query().Get("startHour"); raw != "" {
		startHour, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /spaces/{spaceId}/available-slots - Invalid startHour: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStartHour)
			return
		}
		req.StartHour = &startHour
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/{spaceId}/available-slots - Space not found: space_id=%s", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, getAvailableSlots.ErrSpaceInactive):
			h.logger.Warn("GET /spaces/{spaceId}/available-slots - Space inactive: space_id=%s", spaceID)
			handlers.RespondNotFound(w, msgSpaceInactive)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /spaces/{spaceId}/available-slots - Date in past: space_id=%s", spaceID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /spaces/{spaceId}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStartHour)

		default:
			h.logger.Error("GET /spaces/{spaceId}/available-slots - Failed: space_id=%s, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /spaces/{spaceId}/available-slots - %d start options: space_id=%s",
		len(result.StartHours), spaceID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
