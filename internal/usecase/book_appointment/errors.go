package book_appointment

import (
	"errors"
	"fmt"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

var (
	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = fmt.Errorf("%w: patient not found", domain.ErrNotFound)

	// ErrProviderNotFound возвращается, когда врач не найден
	ErrProviderNotFound = fmt.Errorf("%w: provider not found", domain.ErrNotFound)

	// ErrProviderInactive возвращается, когда врач не принимает записи
	ErrProviderInactive = fmt.Errorf("%w: provider is not accepting appointments", domain.ErrProviderUnavailable)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)

// Исходы записи для метрик
const (
	outcomeCreated     = "created"
	outcomeInvalid     = "invalid"
	outcomeUnavailable = "unavailable"
	outcomeConflict    = "conflict"
	outcomeNotFound    = "not_found"
	outcomeError       = "error"
)
