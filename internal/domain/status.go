package domain

import "fmt"

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusCheckedIn  AppointmentStatus = "checked_in"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// allowedTransitions is the appointment state machine.
// Terminal states map to an empty set.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled:  {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
	StatusNoShow:     {},
}

// InactiveStatuses statuses that no longer hold the provider's time
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses statuses that occupy the provider's time
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCheckedIn,
	StatusInProgress,
	StatusCompleted,
}

// ParseStatus converts a raw string into a known status
func ParseStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(s)
	if _, ok := allowedTransitions[status]; !ok {
		return "", fmt.Errorf("%w: unknown appointment status %q", ErrValidation, s)
	}
	return status, nil
}

// IsValid reports whether s is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// IsTerminal reports whether no further transitions are allowed from s
func (s AppointmentStatus) IsTerminal() bool {
	next, ok := allowedTransitions[s]
	return ok && len(next) == 0
}

// IsActive reports whether an appointment in status s blocks its time window
func (s AppointmentStatus) IsActive() bool {
	for _, inactive := range InactiveStatuses {
		if s == inactive {
			return false
		}
	}
	return true
}

// CanTransitionTo reports whether the state machine permits s -> next
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AllowedTransitions returns a copy of the statuses reachable from s
func (s AppointmentStatus) AllowedTransitions() []AppointmentStatus {
	next := allowedTransitions[s]
	out := make([]AppointmentStatus, len(next))
	copy(out, next)
	return out
}

func (s AppointmentStatus) String() string {
	return string(s)
}

// StatusStrings converts statuses to plain strings for query builders
func StatusStrings(statuses []AppointmentStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
