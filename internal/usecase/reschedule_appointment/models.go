package reschedule_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/types"
)

// Request запрос на перенос приёма
// Незаданные дата и время берутся из текущего приёма
type Request struct {
	AppointmentID uuid.UUID
	Date          *time.Time
	StartTime     *types.TimeString
	EndTime       *types.TimeString
	Notes         *string
}

// movesTime возвращает true, если запрос меняет дату или время
func (r *Request) movesTime() bool {
	return r.Date != nil || r.StartTime != nil || r.EndTime != nil
}

// Response ответ с обновлённым приёмом
type Response struct {
	Appointment *domain.Appointment
}
