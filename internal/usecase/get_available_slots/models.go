package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	ProviderID          uuid.UUID
	Date                time.Time // Дата (без времени)
	SlotDurationMinutes int       // 0 означает длительность по умолчанию
	// IncludeUnbookable оставляет слоты, до начала которых меньше минимального времени до записи.
	// По умолчанию такие слоты отбрасываются: записаться на них нельзя.
	IncludeUnbookable bool
}

// Response модель ответа со списком свободных слотов
type Response struct {
	ProviderID          uuid.UUID
	Date                time.Time
	SlotDurationMinutes int
	Slots               []Slot
}

// Slot свободный интервал [StartTime, EndTime)
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}
