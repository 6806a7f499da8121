package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/domain"
)

// ProfileResponse ответ с данными профиля
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfileListResponse ответ со списком профилей
type ProfileListResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
}

// FromDomainProfile конвертирует domain модель в DTO
func FromDomainProfile(p *domain.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}

	return &ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Role:      string(p.Role),
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// FromDomainProfileList конвертирует список domain моделей в DTO
func FromDomainProfileList(profiles []*domain.Profile) *ProfileListResponse {
	resp := &ProfileListResponse{
		Profiles: make([]ProfileResponse, 0, len(profiles)),
	}
	for _, p := range profiles {
		resp.Profiles = append(resp.Profiles, *FromDomainProfile(p))
	}
	return resp
}
