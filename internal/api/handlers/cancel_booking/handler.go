package cancel_booking

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SpaceService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/service/bookings"
	bookingsModels "github.com/m04kA/SMC-SpaceService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "identificador de reserva inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgBookingNotFound    = "reserva não encontrada"
	msgAccessDenied       = "acesso negado"
	msgCannotCancel       = "esta reserva não pode mais ser cancelada"
	msgTooLateToCancel    = "cancelamento permitido somente até 2 horas antes do início"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("PATCH /bookings/{bookingId}/cancel - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Тело опционально: причина отмены может отсутствовать
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /bookings/{bookingId}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.Cancel(r.Context(), bookingID, &bookingsModels.CancelBookingRequest{
		Reason:    req.Reason,
		Principal: principal,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{bookingId}/cancel - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{bookingId}/cancel - Access denied: booking_id=%s, user_id=%s",
				bookingID, principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{bookingId}/cancel - Cannot cancel: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, bookings.ErrTooLateToCancel):
			h.logger.Warn("PATCH /bookings/{bookingId}/cancel - Too late: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgTooLateToCancel)

		default:
			h.logger.Error("PATCH /bookings/{bookingId}/cancel - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{bookingId}/cancel - Booking cancelled: booking_id=%s, user_id=%s",
		bookingID, principal.UserID)
	handlers.RespondNoContent(w)
}
