package domain

import "fmt"

// NormalizePage applies the list defaults: limit 0 becomes DefaultAppointmentListLimit,
// limits above MaxAppointmentListLimit and negative values are rejected.
func NormalizePage(limit, offset int) (int, int, error) {
	if limit == 0 {
		limit = DefaultAppointmentListLimit
	}
	if limit < 1 || limit > MaxAppointmentListLimit {
		return 0, 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrValidation, MaxAppointmentListLimit)
	}
	if offset < 0 {
		return 0, 0, fmt.Errorf("%w: offset cannot be negative", ErrValidation)
	}
	return limit, offset, nil
}
