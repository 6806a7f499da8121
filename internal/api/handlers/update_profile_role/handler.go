package update_profile_role

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SpaceService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/service/profiles"
)

const (
	msgInvalidProfileID   = "identificador de usuário inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgProfileNotFound    = "usuário não encontrado"
	msgAccessDenied       = "acesso negado"
	msgInvalidRole        = "papel de usuário inválido"
	msgSelfDemotion       = "não é possível alterar o próprio papel"
)

type Handler struct {
	service ProfilesService
	logger  Logger
}

func NewHandler(service ProfilesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/profiles/{profileId}/role
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	profileID, err := uuid.Parse(mux.Vars(r)["profileId"])
	if err != nil {
		h.logger.Warn("PATCH /admin/profiles/{profileId}/role - Invalid profile id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfileID)
		return
	}

	var req UpdateRoleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/profiles/{profileId}/role - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateRole(r.Context(), profileID, req.Role, principal)
	if err != nil {
		switch {
		case errors.Is(err, profiles.ErrProfileNotFound):
			h.logger.Warn("PATCH /admin/profiles/{profileId}/role - Profile not found: profile_id=%s", profileID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, profiles.ErrAccessDenied):
			h.logger.Warn("PATCH /admin/profiles/{profileId}/role - Access denied: user_id=%s", principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, profiles.ErrInvalidRole):
			h.logger.Warn("PATCH /admin/profiles/{profileId}/role - Invalid role %q: profile_id=%s",
				req.Role, profileID)
			handlers.RespondBadRequest(w, msgInvalidRole)

		case errors.Is(err, profiles.ErrSelfDemotion):
			h.logger.Warn("PATCH /admin/profiles/{profileId}/role - Self role change: admin=%s", principal.UserID)
			handlers.RespondError(w, http.StatusConflict, msgSelfDemotion)

		default:
			h.logger.Error("PATCH /admin/profiles/{profileId}/role - Failed: profile_id=%s, error=%v",
				profileID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/profiles/{profileId}/role - Role updated to %q: profile_id=%s",
		req.Role, profileID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
