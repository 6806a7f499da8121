package get_available_slots

import (
	"github.com/m04kA/SMC-SpaceService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SpaceService/internal/usecase/get_available_slots"
)

// SlotResponse почасовой слот в HTTP ответе
type SlotResponse struct {
	Hour      int  `json:"hour"`
	Available bool `json:"available"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	SpaceID    string         `json:"spaceId"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
	StartHours []int          `json:"startHours"`
	EndHours   []int          `json:"endHours"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{Hour: s.Hour, Available: s.Available})
	}

	return &AvailableSlotsResponse{
		SpaceID:    resp.SpaceID.String(),
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
		StartHours: resp.StartHours,
		EndHours:   resp.EndHours,
	}
}
