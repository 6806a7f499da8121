package domain

import (
	"time"

	"github.com/google/uuid"
)

// Space бронируемое пространство (переговорная, коворкинг-зона и т.п.)
type Space struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Capacity     int
	PricePerHour float64
	Resources    []string // Упорядоченный набор тегов ресурсов ("wifi", "projetor", ...)
	ImageURL     *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PriceFor возвращает стоимость бронирования на указанное число часов
// Частичные часы не тарифицируются - бронирования всегда кратны часу
func (s *Space) PriceFor(hours int) float64 {
	return float64(hours) * s.PricePerHour
}
