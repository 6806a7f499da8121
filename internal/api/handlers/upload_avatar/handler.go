package upload_avatar

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
	msgInvalidProfileID = "identificador de usuário inválido"
	msgInvalidForm      = "arquivo de imagem ausente ou inválido"
	msgImageTooLarge    = "imagem excede o tamanho máximo de 5 MB"
	msgUnsupportedImage = "formato de imagem não suportado, use JPEG, PNG ou WebP"
	msgProfileNotFound  = "usuário não encontrado"
	msgAccessDenied     = "acesso negado"
)

// maxAvatarSize максимальный размер аватара (5 MiB)
const maxAvatarSize = 5 << 20

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

// Handle POST /api/v1/profiles/{profileId}/avatar
// Ожидает multipart/form-data с полем file
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	profileID, err := uuid.Parse(mux.Vars(r)["profileId"])
	if err != nil {
		h.logger.Warn("POST /profiles/{profileId}/avatar - Invalid profile id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfileID)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.logger.Warn("POST /profiles/{profileId}/avatar - File too large: profile_id=%s, limit=%d", profileID, maxErr.Limit)
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgImageTooLarge)
			return
		}
		h.logger.Warn("POST /profiles/{profileId}/avatar - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	result, err := h.service.UploadAvatar(r.Context(), profileID, contentType, file, principal)
	if err != nil {
		switch {
		case errors.Is(err, profiles.ErrProfileNotFound):
			h.logger.Warn("POST /profiles/{profileId}/avatar - Profile not found: profile_id=%s", profileID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, profiles.ErrAccessDenied):
			h.logger.Warn("POST /profiles/{profileId}/avatar - Access denied: profile_id=%s, user_id=%s",
				profileID, principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, profiles.ErrUnsupportedImage):
			h.logger.Warn("POST /profiles/{profileId}/avatar - Unsupported image type %q: profile_id=%s",
				contentType, profileID)
			handlers.RespondError(w, http.StatusUnsupportedMediaType, msgUnsupportedImage)

		default:
			h.logger.Error("POST /profiles/{profileId}/avatar - Failed: profile_id=%s, error=%v", profileID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /profiles/{profileId}/avatar - Avatar uploaded: profile_id=%s", profileID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
