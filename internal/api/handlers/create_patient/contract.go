package create_patient

import (
	"context"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/patients/models"
)

type PatientService interface {
	Create(ctx context.Context, req *models.CreatePatientRequest) (*models.PatientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
