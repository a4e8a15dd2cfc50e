package get_visit

import (
	"context"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/visits/models"
)

type VisitService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.VisitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
