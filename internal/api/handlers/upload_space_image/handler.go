package upload_space_image

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SpaceService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/service/spaces"
)

const (
	msgInvalidSpaceID   = "identificador de espaço inválido"
	msgInvalidForm      = "arquivo de imagem ausente ou inválido"
	msgImageTooLarge    = "imagem excede o tamanho máximo de 10 MB"
	msgUnsupportedImage = "formato de imagem não suportado, use JPEG, PNG ou WebP"
	msgSpaceNotFound    = "espaço não encontrado"
	msgAccessDenied     = "acesso negado"
)

// maxImageSize максимальный размер загружаемого изображения (10 MiB)
const maxImageSize = 10 << 20

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

// Handle POST /api/v1/spaces/{spaceId}/image
// Ожидает multipart/form-data с полем file
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	spaceID, err := uuid.Parse(mux.Vars(r)["spaceId"])
	if err != nil {
		h.logger.Warn("POST /spaces/{spaceId}/image - Invalid space id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.logger.Warn("POST /spaces/{spaceId}/image - File too large: space_id=%s, limit=%d", spaceID, maxErr.Limit)
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgImageTooLarge)
			return
		}
		h.logger.Warn("POST /spaces/{spaceId}/image - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	result, err := h.service.UploadImage(r.Context(), spaceID, contentType, file, principal)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("POST /spaces/{spaceId}/image - Space not found: space_id=%s", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, spaces.ErrAccessDenied):
			h.logger.Warn("POST /spaces/{spaceId}/image - Access denied: space_id=%s, user_id=%s",
				spaceID, principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, spaces.ErrUnsupportedImage):
			h.logger.Warn("POST /spaces/{spaceId}/image - Unsupported image type %q: space_id=%s",
				contentType, spaceID)
			handlers.RespondError(w, http.StatusUnsupportedMediaType, msgUnsupportedImage)

		default:
			h.logger.Error("POST /spaces/{spaceId}/image - Failed: space_id=%s, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /spaces/{spaceId}/image - Image uploaded: space_id=%s", spaceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
