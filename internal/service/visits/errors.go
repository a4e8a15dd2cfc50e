package visits

import (
	"errors"
	"fmt"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

var (
	// ErrVisitNotFound возвращается, когда визит не найден
	ErrVisitNotFound = fmt.Errorf("%w: visit not found", domain.ErrNotFound)

	// ErrAppointmentNotFound возвращается, когда приём для визита не найден
	ErrAppointmentNotFound = fmt.Errorf("%w: appointment not found", domain.ErrNotFound)

	// ErrAppointmentNotCompleted возвращается при попытке создать визит для незавершённого приёма
	ErrAppointmentNotCompleted = fmt.Errorf("%w: visit can only be created for a completed appointment", domain.ErrValidation)

	// ErrVisitExists возвращается, если у приёма уже есть визит
	ErrVisitExists = fmt.Errorf("%w: visit already exists for this appointment", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("visits.service: internal error")
)
