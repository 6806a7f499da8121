package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/domain"
)

// Request модели

// CreateSpaceRequest запрос на создание пространства
type CreateSpaceRequest struct {
	Name         string
	Description  string
	Capacity     int
	PricePerHour float64
	Resources    []string
	Principal    auth.Principal
}

// ToDomain конвертирует request в domain модель
func (r *CreateSpaceRequest) ToDomain() *domain.Space {
	resources := r.Resources
	if resources == nil {
		resources = []string{}
	}
	return &domain.Space{
		Name:         r.Name,
		Description:  r.Description,
		Capacity:     r.Capacity,
		PricePerHour: r.PricePerHour,
		Resources:    resources,
		IsActive:     true,
	}
}

// UpdateSpaceRequest запрос на частичное обновление пространства
// nil-поля остаются без изменений
type UpdateSpaceRequest struct {
	Name         *string
	Description  *string
	Capacity     *int
	PricePerHour *float64
	Resources    []string
	IsActive     *bool
	Principal    auth.Principal
}

// ApplyTo накладывает заполненные поля запроса на domain модель
func (r *UpdateSpaceRequest) ApplyTo(space *domain.Space) {
	if r.Name != nil {
		space.Name = *r.Name
	}
	if r.Description != nil {
		space.Description = *r.Description
	}
	if r.Capacity != nil {
		space.Capacity = *r.Capacity
	}
	if r.PricePerHour != nil {
		space.PricePerHour = *r.PricePerHour
	}
	if r.Resources != nil {
		space.Resources = r.Resources
	}
	if r.IsActive != nil {
		space.IsActive = *r.IsActive
	}
}

// Response модели

// SpaceResponse ответ с данными пространства
type SpaceResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Capacity     int       `json:"capacity"`
	PricePerHour float64   `json:"pricePerHour"`
	Resources    []string  `json:"resources"`
	ImageURL     *string   `json:"imageUrl,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SpaceListResponse ответ со списком пространств
type SpaceListResponse struct {
	Spaces []SpaceResponse `json:"spaces"`
}

// Методы конвертации

// FromDomainSpace конвертирует domain модель в DTO
func FromDomainSpace(s *domain.Space) *SpaceResponse {
	if s == nil {
		return nil
	}

	return &SpaceResponse{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Capacity:     s.Capacity,
		PricePerHour: s.PricePerHour,
		Resources:    s.Resources,
		ImageURL:     s.ImageURL,
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FromDomainSpaceList конвертирует список domain моделей в DTO
func FromDomainSpaceList(spaces []*domain.Space) *SpaceListResponse {
	resp := &SpaceListResponse{
		Spaces: make([]SpaceResponse, 0, len(spaces)),
	}
	for _, s := range spaces {
		resp.Spaces = append(resp.Spaces, *FromDomainSpace(s))
	}
	return resp
}
