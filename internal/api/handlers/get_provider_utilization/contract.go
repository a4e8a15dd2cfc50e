package get_provider_utilization

import (
	"context"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/analytics/models"
)

type AnalyticsService interface {
	ProviderUtilization(ctx context.Context, req *models.ProviderUtilizationRequest) (*models.ProviderUtilizationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
