package spaces

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-SpaceService/internal/infra/storage/space"
	"github.com/m04kA/SMC-SpaceService/internal/service/spaces/models"
)

// imageExtensions поддерживаемые типы изображений и их расширения
var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// Service сервис для работы с пространствами
type Service struct {
	spaceRepo   SpaceRepository
	fileStorage FileStorage
	logger      Logger
}

// NewService создает новый экземпляр сервиса пространств
func NewService(spaceRepo SpaceRepository, fileStorage FileStorage, logger Logger) *Service {
	return &Service{
		spaceRepo:   spaceRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// Create создает новое пространство
// Доступно только администраторам
func (s *Service) Create(ctx context.Context, req *models.CreateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("Create: creating space name=%q by user=%s", req.Name, req.Principal.UserID)

	if !req.Principal.CanManageSpaces() {
		s.logger.Warn("Create: access denied for user=%s", req.Principal.UserID)
		return nil, ErrAccessDenied
	}

	if err := validateSpaceFields(req.Name, req.Capacity, req.PricePerHour, req.Resources); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.spaceRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created space id=%s", created.ID)
	return models.FromDomainSpace(created), nil
}

// GetByID получает пространство по ID
// Неактивные пространства видны только администраторам
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, principal auth.Principal) (*models.SpaceResponse, error) {
	s.logger.Info("GetByID: fetching space id=%s", id)

	space, err := s.getSpace(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !space.IsActive && !principal.IsAdmin() {
		s.logger.Warn("GetByID: space id=%s is inactive, hidden from user=%s", id, principal.UserID)
		return nil, ErrSpaceNotFound
	}

	return models.FromDomainSpace(space), nil
}

// List получает список пространств
// Пользователи видят только активные, администраторы - все
func (s *Service) List(ctx context.Context, principal auth.Principal) (*models.SpaceListResponse, error) {
	activeOnly := !principal.IsAdmin()
	s.logger.Info("List: fetching spaces, activeOnly=%t", activeOnly)

	spaces, err := s.spaceRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d spaces", len(spaces))
	return models.FromDomainSpaceList(spaces), nil
}

// Update частично обновляет пространство
// Доступно только администраторам
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("Update: updating space id=%s by user=%s", id, req.Principal.UserID)

	if !req.Principal.CanManageSpaces() {
		s.logger.Warn("Update: access denied for user=%s", req.Principal.UserID)
		return nil, ErrAccessDenied
	}

	space, err := s.getSpace(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(space)

	if err := validateSpaceFields(space.Name, space.Capacity, space.PricePerHour, space.Resources); err != nil {
		s.logger.Warn("Update: validation failed for space id=%s: %v", id, err)
		return nil, err
	}

	if err := s.spaceRepo.Update(ctx, space); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("Update: repository error for space id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated space id=%s", id)
	return models.FromDomainSpace(space), nil
}

// Delete удаляет пространство
// Доступно только администраторам
func (s *Service) Delete(ctx context.Context, id uuid.UUID, principal auth.Principal) error {
	s.logger.Info("Delete: deleting space id=%s by user=%s", id, principal.UserID)

	if !principal.CanManageSpaces() {
		s.logger.Warn("Delete: access denied for user=%s", principal.UserID)
		return ErrAccessDenied
	}

	if err := s.spaceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("Delete: space id=%s not found", id)
			return ErrSpaceNotFound
		}
		s.logger.Error("Delete: repository error for space id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted space id=%s", id)
	return nil
}

// UploadImage загружает изображение пространства в объектное хранилище
// и сохраняет публичный URL. Доступно только администраторам
func (s *Service) UploadImage(ctx context.Context, id uuid.UUID, contentType string, body io.Reader, principal auth.Principal) (*models.SpaceResponse, error) {
	s.logger.Info("UploadImage: uploading image for space id=%s, contentType=%s", id, contentType)

	if !principal.CanManageSpaces() {
		s.logger.Warn("UploadImage: access denied for user=%s", principal.UserID)
		return nil, ErrAccessDenied
	}

	ext, ok := imageExtensions[contentType]
	if !ok {
		s.logger.Warn("UploadImage: unsupported content type %q for space id=%s", contentType, id)
		return nil, ErrUnsupportedImage
	}

	space, err := s.getSpace(ctx, "UploadImage", id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("spaces/%s/%s.%s", id, uuid.New(), ext)
	url, err := s.fileStorage.Upload(ctx, key, contentType, body)
	if err != nil {
		s.logger.Error("UploadImage: upload failed for space id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UploadImage - upload failed: %v", ErrInternal, err)
	}

	if err := s.spaceRepo.SetImageURL(ctx, id, &url); err != nil {
		s.logger.Error("UploadImage: failed to save image url for space id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UploadImage - repository error: %v", ErrInternal, err)
	}

	space.ImageURL = &url

	s.logger.Info("UploadImage: successfully uploaded image for space id=%s", id)
	return models.FromDomainSpace(space), nil
}

// getSpace получает пространство по ID с маппингом ошибок репозитория
func (s *Service) getSpace(ctx context.Context, op string, id uuid.UUID) (*domain.Space, error) {
	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("%s: space id=%s not found", op, id)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("%s: repository error for space id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return space, nil
}

// validateSpaceFields проверяет базовые ограничения полей пространства
func validateSpaceFields(name string, capacity int, pricePerHour float64, resources []string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if capacity < domain.MinCapacity {
		return fmt.Errorf("%w: capacity must be at least %d", ErrInvalidInput, domain.MinCapacity)
	}
	if pricePerHour < 0 {
		return fmt.Errorf("%w: pricePerHour must not be negative", ErrInvalidInput)
	}
	if len(resources) > domain.MaxResourceTags {
		return fmt.Errorf("%w: at most %d resource tags allowed", ErrInvalidInput, domain.MaxResourceTags)
	}
	return nil
}
