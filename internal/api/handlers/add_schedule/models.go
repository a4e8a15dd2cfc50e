package add_schedule

import (
	"fmt"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/providers/models"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/types"
)

// AddScheduleRequest HTTP request model
type AddScheduleRequest struct {
	DayOfWeek      *int    `json:"dayOfWeek" validate:"required,min=0,max=6"` // 0 = воскресенье
	StartTime      string  `json:"startTime" validate:"required"`
	EndTime        string  `json:"endTime" validate:"required"`
	EffectiveFrom  *string `json:"effectiveFrom,omitempty"`
	EffectiveUntil *string `json:"effectiveUntil,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddScheduleRequest) ToServiceRequest() (*models.CreateScheduleRequest, error) {
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	from, err := handlers.ParseOptionalDate(r.EffectiveFrom)
	if err != nil {
		return nil, fmt.Errorf("effectiveFrom: %w", err)
	}

	until, err := handlers.ParseOptionalDate(r.EffectiveUntil)
	if err != nil {
		return nil, fmt.Errorf("effectiveUntil: %w", err)
	}

	return &models.CreateScheduleRequest{
		DayOfWeek:      *r.DayOfWeek,
		StartTime:      start,
		EndTime:        end,
		EffectiveFrom:  from,
		EffectiveUntil: until,
	}, nil
}
