package analytics

import (
	"errors"
	"fmt"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

// Ограничения периодов отчётов
const (
	maxDailyLoadWindowDays = 366
	maxUtilizationDays     = 365
	defaultNoShowMonths    = 12
	maxNoShowMonths        = 36
)

var (
	// ErrInvalidPeriod возвращается при некорректном периоде отчёта
	ErrInvalidPeriod = fmt.Errorf("%w: invalid report period", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("analytics.service: internal error")
)
