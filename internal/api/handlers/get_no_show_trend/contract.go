package get_no_show_trend

import (
	"context"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/analytics/models"
)

type AnalyticsService interface {
	NoShowTrend(ctx context.Context, req *models.NoShowTrendRequest) (*models.NoShowTrendResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
