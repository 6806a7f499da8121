package get_report

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SpaceService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/domain"
	"github.com/m04kA/SMC-SpaceService/internal/service/reports"
	reportsModels "github.com/m04kA/SMC-SpaceService/internal/service/reports/models"
)

const (
	msgInvalidPeriod = "período do relatório inválido"
	msgAccessDenied  = "acesso negado"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reports?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	req := &reportsModels.GenerateReportRequest{Principal: principal}

	q := r.URL.Query()
	if raw := q.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/reports - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		req.From = &from
	}
	if raw := q.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/reports - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		// Включаем весь день "to" в период
		toEnd := to.AddDate(0, 0, 1)
		req.To = &toEnd
	}

	result, err := h.service.Generate(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrAccessDenied):
			h.logger.Warn("GET /admin/reports - Access denied: user_id=%s", principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reports.ErrInvalidPeriod):
			h.logger.Warn("GET /admin/reports - Invalid period")
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /admin/reports - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reports - Report generated for admin=%s", principal.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
