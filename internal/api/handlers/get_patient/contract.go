package get_patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/patients/models"
)

type PatientService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.PatientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
