package get_daily_load

import (
	"context"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/analytics/models"
)

type AnalyticsService interface {
	DailyLoad(ctx context.Context, req *models.DailyLoadRequest) (*models.DailyLoadResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
