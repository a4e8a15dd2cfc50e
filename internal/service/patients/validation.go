package patients

import (
	"fmt"
	"strings"
	"time"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

// validatePatient проверяет поля пациента после создания или слияния изменений
func validatePatient(p *domain.Patient, now time.Time) error {
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("%w: first and last name are required", domain.ErrValidation)
	}

	if strings.TrimSpace(p.Phone) == "" {
		return fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}

	if p.DateOfBirth.IsZero() {
		return fmt.Errorf("%w: date of birth is required", domain.ErrValidation)
	}

	// Дата рождения строго в прошлом
	if !domain.DateOnly(p.DateOfBirth).Before(domain.DateOnly(now)) {
		return fmt.Errorf("%w: date of birth must be in the past", domain.ErrValidation)
	}

	return nil
}
