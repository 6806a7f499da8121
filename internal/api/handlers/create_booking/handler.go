package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SpaceService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceService/internal/auth"
	createBooking "github.com/m04kA/SMC-SpaceService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidRequest      = "dados da reserva inválidos"
	msgSlotNotAvailable    = "o horário selecionado não está mais disponível"
	msgSpaceNotFound       = "espaço não encontrado"
	msgSpaceInactive       = "espaço indisponível"
	msgInvalidDate         = "data da reserva inválida"
	msgInvalidTimeRange    = "o horário de início deve ser anterior ao de término"
	msgMaxDurationExceeded = "a reserva não pode exceder 8 horas"
	msgTooLateToBook       = "a reserva deve ser feita com pelo menos 1 hora de antecedência"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(principal)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%s, space_id=%s",
				principal.UserID, req.SpaceID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrSpaceNotFound):
			h.logger.Warn("POST /bookings - Space not found: space_id=%s", req.SpaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, createBooking.ErrSpaceInactive):
			h.logger.Warn("POST /bookings - Space inactive: space_id=%s", req.SpaceID)
			handlers.RespondNotFound(w, msgSpaceInactive)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: user_id=%s", principal.UserID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings - Invalid time range: user_id=%s", principal.UserID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createBooking.ErrMaxDurationExceeded):
			h.logger.Warn("POST /bookings - Max duration exceeded: user_id=%s", principal.UserID)
			handlers.RespondBadRequest(w, msgMaxDurationExceeded)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: user_id=%s", principal.UserID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, space_id=%s, error=%v",
				principal.UserID, req.SpaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, user_id=%s, space_id=%s",
		result.Booking.ID, principal.UserID, req.SpaceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
