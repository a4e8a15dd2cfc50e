package create_visit

import (
	"context"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/visits/models"
)

type VisitService interface {
	Create(ctx context.Context, req *models.CreateVisitRequest) (*models.VisitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
