package delete_schedule

import (
	"context"

	"github.com/google/uuid"
)

type ProviderService interface {
	DeleteSchedule(ctx context.Context, providerID, scheduleID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
