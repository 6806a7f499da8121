package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SpaceService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "identificador de reserva inválido"
	msgBookingNotFound  = "reserva não encontrada"
	msgAccessDenied     = "acesso negado"
	msgNotPending       = "apenas reservas aguardando confirmação podem ser confirmadas"
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

// Handle POST /api/v1/bookings/{bookingId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("POST /bookings/{bookingId}/confirm - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.ConfirmPayment(r.Context(), bookingID, principal)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{bookingId}/confirm - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{bookingId}/confirm - Access denied: booking_id=%s, user_id=%s",
				bookingID, principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrNotPending):
			h.logger.Warn("POST /bookings/{bookingId}/confirm - Not pending: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotPending)

		default:
			h.logger.Error("POST /bookings/{bookingId}/confirm - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{bookingId}/confirm - Booking confirmed: booking_id=%s, user_id=%s",
		bookingID, principal.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
