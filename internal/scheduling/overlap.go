package scheduling

import (
	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/types"
)

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd).
// Строгие неравенства: интервалы, которые только касаются границами, не пересекаются.
//
// Примеры:
// - 10:00-10:30 и 10:15-10:45 → пересекаются
// - 09:30-10:00 и 10:00-10:30 → НЕ пересекаются
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && aEnd.IsAfter(bStart)
}

// FindConflict возвращает первый активный приём, пересекающийся с [start, end).
// Приём с идентификатором exclude пропускается (перенос приёма на новое время).
func FindConflict(appointments []*domain.Appointment, start, end types.TimeString, exclude *uuid.UUID) *domain.Appointment {
	for _, a := range appointments {
		if !a.IsActive() {
			continue
		}
		if exclude != nil && a.ID == *exclude {
			continue
		}
		if Overlaps(a.StartTime, a.EndTime, start, end) {
			return a
		}
	}
	return nil
}
