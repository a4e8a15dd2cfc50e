package appointments

import (
	"errors"
	"fmt"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда приём не найден
	ErrAppointmentNotFound = fmt.Errorf("%w: appointment not found", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments.service: internal error")
)
