package patients

import (
	"errors"
	"fmt"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

var (
	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = fmt.Errorf("%w: patient not found", domain.ErrNotFound)

	// ErrDuplicateEmail возвращается, если email уже занят другим пациентом
	ErrDuplicateEmail = fmt.Errorf("%w: patient with this email already exists", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("patients.service: internal error")
)
