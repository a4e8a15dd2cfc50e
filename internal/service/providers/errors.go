package providers

import (
	"errors"
	"fmt"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

var (
	// ErrProviderNotFound возвращается, когда врач не найден
	ErrProviderNotFound = fmt.Errorf("%w: provider not found", domain.ErrNotFound)

	// ErrScheduleNotFound возвращается, когда правило расписания не найдено у врача
	ErrScheduleNotFound = fmt.Errorf("%w: schedule not found", domain.ErrNotFound)

	// ErrDuplicate возвращается при повторе номера лицензии или email
	ErrDuplicate = fmt.Errorf("%w: provider with this license number or email already exists", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("providers.service: internal error")
)
