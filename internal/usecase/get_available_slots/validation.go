package get_available_slots

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/scheduling"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, defaultDuration time.Duration) error {
	if req.ProviderID == uuid.Nil {
		return fmt.Errorf("%w: providerId is required", domain.ErrValidation)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}

	if req.SlotDurationMinutes == 0 {
		req.SlotDurationMinutes = int(defaultDuration / time.Minute)
		if req.SlotDurationMinutes == 0 {
			req.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
		}
	}
	if req.SlotDurationMinutes < domain.MinSlotDurationMinutes || req.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return scheduling.ErrInvalidSlotDuration
	}

	return nil
}
