package add_schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/providers/models"
)

type ProviderService interface {
	AddSchedule(ctx context.Context, providerID uuid.UUID, req *models.CreateScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
