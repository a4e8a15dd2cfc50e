package transition_status

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

// validateRequest валидирует запрос и возвращает целевой статус
func validateRequest(req *Request) (domain.AppointmentStatus, error) {
	if req.AppointmentID == uuid.Nil {
		return "", fmt.Errorf("%w: appointmentId is required", domain.ErrValidation)
	}

	status, err := domain.ParseStatus(req.NewStatus)
	if err != nil {
		return "", err
	}

	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return "", fmt.Errorf("%w: cancellation reason cannot exceed %d characters",
			domain.ErrValidation, domain.MaxCancellationReasonLength)
	}

	return status, nil
}

// cancellationReason возвращает причину отмены без пробелов по краям, либо nil для пустой
func cancellationReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
