package list_patients

import (
	"context"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/patients/models"
)

type PatientService interface {
	List(ctx context.Context, req *models.ListPatientsRequest) (*models.PatientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
