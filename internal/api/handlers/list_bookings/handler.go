package list_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/domain"
	"github.com/m04kA/SMC-SpaceService/internal/service/bookings"
	bookingsModels "github.com/m04kA/SMC-SpaceService/internal/service/bookings/models"
)

const (
	msgInvalidFilter = "filtros de busca inválidos"
	msgAccessDenied  = "acesso negado"
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

// Handle GET /api/v1/admin/bookings?status=&spaceId=&userId=&date=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	req, err := parseFilter(r, principal)
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.ListBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /admin/bookings - Access denied: user_id=%s", principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/bookings - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - %d bookings listed", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseFilter собирает фильтр из query-параметров
func parseFilter(r *http.Request, principal auth.Principal) (*bookingsModels.ListBookingsRequest, error) {
	q := r.URL.Query()

	// Админский список по умолчанию включает завершенные и отмененные брони,
	// includeInactive=false сужает выдачу до активных
	req := &bookingsModels.ListBookingsRequest{
		Principal:       principal,
		IncludeInactive: q.Get("includeInactive") != "false",
	}

	if raw := q.Get("spaceId"); raw != "" {
		spaceID, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		req.SpaceID = &spaceID
	}

	if raw := q.Get("userId"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		req.UserID = &userID
	}

	if status := q.Get("status"); status != "" {
		req.Status = &status
	}

	// Параметр date задает окно одного дня
	if raw := q.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		dayEnd := date.AddDate(0, 0, 1)
		req.StartDate = &date
		req.EndDate = &dayEnd
	}

	return req, nil
}
