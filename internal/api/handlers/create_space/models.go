package create_space

import (
	"github.com/m04kA/SMC-SpaceService/internal/auth"
	spacesModels "github.com/m04kA/SMC-SpaceService/internal/service/spaces/models"
)

// CreateSpaceRequest HTTP request model
type CreateSpaceRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Capacity     int      `json:"capacity"`
	PricePerHour float64  `json:"pricePerHour"`
	Resources    []string `json:"resources,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSpaceRequest) ToServiceRequest(principal auth.Principal) *spacesModels.CreateSpaceRequest {
	return &spacesModels.CreateSpaceRequest{
		Name:         r.Name,
		Description:  r.Description,
		Capacity:     r.Capacity,
		PricePerHour: r.PricePerHour,
		Resources:    r.Resources,
		Principal:    principal,
	}
}
