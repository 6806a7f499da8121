package update_space

import (
	"github.com/m04kA/SMC-SpaceService/internal/auth"
	spacesModels "github.com/m04kA/SMC-SpaceService/internal/service/spaces/models"
)

// UpdateSpaceRequest HTTP request model
// nil-поля остаются без изменений
type UpdateSpaceRequest struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Capacity     *int     `json:"capacity,omitempty"`
	PricePerHour *float64 `json:"pricePerHour,omitempty"`
	Resources    []string `json:"resources,omitempty"`
	IsActive     *bool    `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateSpaceRequest) ToServiceRequest(principal auth.Principal) *spacesModels.UpdateSpaceRequest {
	return &spacesModels.UpdateSpaceRequest{
		Name:         r.Name,
		Description:  r.Description,
		Capacity:     r.Capacity,
		PricePerHour: r.PricePerHour,
		Resources:    r.Resources,
		IsActive:     r.IsActive,
		Principal:    principal,
	}
}
