package scheduling

import (
	"fmt"
	"sort"
	"time"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

// ErrInvalidSlotDuration is returned for slot lengths outside the accepted bounds
var ErrInvalidSlotDuration = fmt.Errorf("%w: slot duration must be between %d and %d minutes",
	domain.ErrValidation, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)

// SlotQuery parameters of a free slot search
type SlotQuery struct {
	Date            time.Time
	DurationMinutes int
	// NotBefore отбрасывает слоты, начинающиеся раньше этого момента (now + минимальное время до записи).
	// Нулевое значение отключает фильтр.
	NotBefore time.Time
}

// FreeSlots перечисляет свободные слоты фиксированной длины на дату.
//
// Алгоритм:
//  1. Для каждого правила расписания, действующего в эту дату, шагаем от начала правила
//     с шагом DurationMinutes, пока конец слота не выходит за конец правила.
//     Соседние правила не объединяются: слот целиком лежит внутри одного правила.
//  2. Отбрасываем слоты, пересекающиеся с активными приёмами.
//  3. Отбрасываем слоты, начинающиеся раньше NotBefore.
//  4. Сливаем слоты всех правил в хронологическом порядке; слот, пересекающийся
//     с уже принятым (перекрывающиеся правила), отбрасывается.
func FreeSlots(rules []*domain.ProviderSchedule, booked []*domain.Appointment, q SlotQuery) ([]domain.AvailableSlot, error) {
	if q.DurationMinutes < domain.MinSlotDurationMinutes || q.DurationMinutes > domain.MaxSlotDurationMinutes {
		return nil, ErrInvalidSlotDuration
	}

	candidates := make([]domain.AvailableSlot, 0)
	for _, rule := range ApplicableRules(rules, q.Date) {
		candidates = append(candidates, stepRule(rule, q.DurationMinutes)...)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].StartTime.IsBefore(candidates[j].StartTime)
	})

	free := make([]domain.AvailableSlot, 0, len(candidates))
	for _, slot := range candidates {
		if FindConflict(booked, slot.StartTime, slot.EndTime, nil) != nil {
			continue
		}
		if !q.NotBefore.IsZero() && slot.StartTime.OnDate(q.Date, q.NotBefore.Location()).Before(q.NotBefore) {
			continue
		}
		// Все слоты одной длины, поэтому достаточно сравнить с последним принятым
		if n := len(free); n > 0 && Overlaps(free[n-1].StartTime, free[n-1].EndTime, slot.StartTime, slot.EndTime) {
			continue
		}
		free = append(free, slot)
	}

	return free, nil
}

// stepRule генерирует все слоты внутри одного правила
func stepRule(rule *domain.ProviderSchedule, durationMinutes int) []domain.AvailableSlot {
	slots := make([]domain.AvailableSlot, 0)

	current := rule.StartTime
	for current.IsBefore(rule.EndTime) {
		// Конец слота за полночью означает, что слот не помещается в правило
		slotEnd, err := current.AddMinutes(durationMinutes)
		if err != nil {
			break
		}
		if slotEnd.IsAfter(rule.EndTime) {
			break
		}

		slots = append(slots, domain.AvailableSlot{StartTime: current, EndTime: slotEnd})
		current = slotEnd
	}

	return slots
}
