package get_provider

import (
	"context"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/providers/models"
)

type ProviderService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProviderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
