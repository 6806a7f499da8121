package models

import (
	"time"

	"github.com/m04kA/SMC-SpaceService/internal/auth"
)

// GenerateReportRequest запрос на формирование отчета
// Период опционален; без него отчет строится за всё время
type GenerateReportRequest struct {
	From      *time.Time
	To        *time.Time
	Principal auth.Principal
}

// StatusCountResponse количество бронирований в одном статусе
type StatusCountResponse struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

// ReportResponse сводный отчет по системе
type ReportResponse struct {
	GeneratedAt time.Time  `json:"generatedAt"`
	PeriodFrom  *time.Time `json:"periodFrom,omitempty"`
	PeriodTo    *time.Time `json:"periodTo,omitempty"`

	TotalBookings    int                   `json:"totalBookings"`
	BookingsByStatus []StatusCountResponse `json:"bookingsByStatus"`
	TotalRevenue     float64               `json:"totalRevenue"`

	// Заполняется только при заданном периоде
	BookingsInPeriod *int `json:"bookingsInPeriod,omitempty"`

	TotalSpaces   int `json:"totalSpaces"`
	TotalProfiles int `json:"totalProfiles"`
}
