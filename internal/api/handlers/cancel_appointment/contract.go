package cancel_appointment

import (
	"context"

	transitionStatus "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/usecase/transition_status"
)

type TransitionStatusUseCase interface {
	Execute(ctx context.Context, req *transitionStatus.Request) (*transitionStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
