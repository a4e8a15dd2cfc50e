package get_available_slots

import (
	"time"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

// toSlots конвертирует доменные слоты в модель ответа
func toSlots(free []domain.AvailableSlot) []Slot {
	slots := make([]Slot, 0, len(free))
	for _, s := range free {
		slots = append(slots, Slot{StartTime: s.StartTime, EndTime: s.EndTime})
	}
	return slots
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	return domain.DateOnly(date).Before(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location()))
}
