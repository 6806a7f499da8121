package profiles

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/domain"
	profileRepo "github.com/m04kA/SMC-SpaceService/internal/infra/storage/profile"
	"github.com/m04kA/SMC-SpaceService/internal/service/profiles/models"
)

// imageExtensions поддерживаемые типы изображений и их расширения
var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// Service сервис для работы с профилями пользователей
type Service struct {
	profileRepo ProfileRepository
	fileStorage FileStorage
	logger      Logger
}

// NewService создает новый экземпляр сервиса профилей
func NewService(profileRepo ProfileRepository, fileStorage FileStorage, logger Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// GetByID получает профиль по ID
// Пользователь видит только свой профиль, администратор - любые
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, principal auth.Principal) (*models.ProfileResponse, error) {
	s.logger.Info("GetByID: fetching profile id=%s for user=%s", id, principal.UserID)

	if principal.UserID != id && !principal.IsAdmin() {
		s.logger.Warn("GetByID: access denied for user=%s to profile id=%s", principal.UserID, id)
		return nil, ErrAccessDenied
	}

	profile, err := s.getProfile(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainProfile(profile), nil
}

// List получает список всех профилей
// Доступно только администраторам
func (s *Service) List(ctx context.Context, principal auth.Principal) (*models.ProfileListResponse, error) {
	s.logger.Info("List: fetching profiles for admin=%s", principal.UserID)

	if !principal.CanManageProfiles() {
		s.logger.Warn("List: access denied for user=%s", principal.UserID)
		return nil, ErrAccessDenied
	}

	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d profiles", len(profiles))
	return models.FromDomainProfileList(profiles), nil
}

// UpdateRole изменяет роль пользователя
// Доступно только администраторам; администратор не может изменить собственную роль
func (s *Service) UpdateRole(ctx context.Context, id uuid.UUID, role string, principal auth.Principal) (*models.ProfileResponse, error) {
	s.logger.Info("UpdateRole: updating role of profile id=%s to %q by user=%s", id, role, principal.UserID)

	if !principal.CanManageProfiles() {
		s.logger.Warn("UpdateRole: access denied for user=%s", principal.UserID)
		return nil, ErrAccessDenied
	}

	if principal.UserID == id {
		s.logger.Warn("UpdateRole: admin=%s attempted to change own role", principal.UserID)
		return nil, ErrSelfDemotion
	}

	newRole := domain.Role(role)
	if !newRole.IsValid() {
		s.logger.Warn("UpdateRole: invalid role %q for profile id=%s", role, id)
		return nil, ErrInvalidRole
	}

	profile, err := s.getProfile(ctx, "UpdateRole", id)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.UpdateRole(ctx, id, newRole); err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		s.logger.Error("UpdateRole: repository error for profile id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateRole - repository error: %v", ErrInternal, err)
	}

	profile.Role = newRole

	s.logger.Info("UpdateRole: successfully updated profile id=%s to role=%s", id, newRole)
	return models.FromDomainProfile(profile), nil
}

// UploadAvatar загружает аватар пользователя в объектное хранилище
// Пользователь меняет только свой аватар, администратор - любой
func (s *Service) UploadAvatar(ctx context.Context, id uuid.UUID, contentType string, body io.Reader, principal auth.Principal) (*models.ProfileResponse, error) {
	s.logger.Info("UploadAvatar: uploading avatar for profile id=%s, contentType=%s", id, contentType)

	if principal.UserID != id && !principal.IsAdmin() {
		s.logger.Warn("UploadAvatar: access denied for user=%s to profile id=%s", principal.UserID, id)
		return nil, ErrAccessDenied
	}

	ext, ok := imageExtensions[contentType]
	if !ok {
		s.logger.Warn("UploadAvatar: unsupported content type %q for profile id=%s", contentType, id)
		return nil, ErrUnsupportedImage
	}

	profile, err := s.getProfile(ctx, "UploadAvatar", id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("avatars/%s/%s.%s", id, uuid.New(), ext)
	url, err := s.fileStorage.Upload(ctx, key, contentType, body)
	if err != nil {
		s.logger.Error("UploadAvatar: upload failed for profile id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UploadAvatar - upload failed: %v", ErrInternal, err)
	}

	if err := s.profileRepo.UpdateAvatarURL(ctx, id, &url); err != nil {
		s.logger.Error("UploadAvatar: failed to save avatar url for profile id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UploadAvatar - repository error: %v", ErrInternal, err)
	}

	profile.AvatarURL = &url

	s.logger.Info("UploadAvatar: successfully uploaded avatar for profile id=%s", id)
	return models.FromDomainProfile(profile), nil
}

// getProfile получает профиль по ID с маппингом ошибок репозитория
func (s *Service) getProfile(ctx context.Context, op string, id uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("%s: profile id=%s not found", op, id)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("%s: repository error for profile id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return profile, nil
}
