package get_report

import (
	"context"

	reportsModels "github.com/m04kA/SMC-SpaceService/internal/service/reports/models"
)

type ReportsService interface {
	Generate(ctx context.Context, req *reportsModels.GenerateReportRequest) (*reportsModels.ReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
