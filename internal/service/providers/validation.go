package providers

import (
	"fmt"
	"strings"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/scheduling"
)

// validateProvider проверяет обязательные поля врача
func validateProvider(p *domain.Provider) error {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", p.FirstName},
		{"lastName", p.LastName},
		{"specialty", p.Specialty},
		{"licenseNumber", p.LicenseNumber},
		{"email", p.Email},
		{"phone", p.Phone},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrValidation, f.name)
		}
	}

	return nil
}

// validateSchedule проверяет правило расписания
func validateSchedule(s *domain.ProviderSchedule) error {
	if !scheduling.ValidDayOfWeek(s.DayOfWeek) {
		return fmt.Errorf("%w: dayOfWeek must be between 0 (Sunday) and 6 (Saturday)", domain.ErrValidation)
	}

	if err := s.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime", domain.ErrValidation)
	}
	if err := s.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime", domain.ErrValidation)
	}

	if !s.EndTime.IsAfter(s.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", domain.ErrValidation)
	}

	if s.EffectiveUntil != nil && s.EffectiveUntil.Before(s.EffectiveFrom) {
		return fmt.Errorf("%w: effectiveUntil cannot be before effectiveFrom", domain.ErrValidation)
	}

	return nil
}
