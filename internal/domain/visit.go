package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Visit is the clinical record of a completed appointment (at most one per appointment)
type Visit struct {
	ID            uuid.UUID
	AppointmentID uuid.UUID
	PatientID     uuid.UUID
	ProviderID    uuid.UUID
	VisitDate     time.Time

	ChiefComplaint *string
	Diagnosis      *string
	TreatmentPlan  *string
	Prescriptions  Prescriptions
	Notes          *string

	FollowUpRequired bool
	FollowUpDate     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewVisitStub creates the minimal visit record for a completed appointment
func NewVisitStub(a *Appointment) *Visit {
	return &Visit{
		AppointmentID: a.ID,
		PatientID:     a.PatientID,
		ProviderID:    a.ProviderID,
		VisitDate:     a.AppointmentDate,
	}
}

// ValidateFollowUp enforces follow_up_required => follow_up_date
func (v *Visit) ValidateFollowUp() error {
	if v.FollowUpRequired && v.FollowUpDate == nil {
		return fmt.Errorf("%w: follow-up date is required when follow-up is required", ErrValidation)
	}
	if v.FollowUpDate != nil && DateOnly(*v.FollowUpDate).Before(DateOnly(v.VisitDate)) {
		return fmt.Errorf("%w: follow-up date cannot be before the visit date", ErrValidation)
	}
	return nil
}

// Prescription is a single medication order
type Prescription struct {
	Medication   string `json:"medication" validate:"required"`
	Dosage       string `json:"dosage,omitempty"`
	Frequency    string `json:"frequency,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// Prescriptions is stored as a JSONB array
type Prescriptions []Prescription

// Value implements driver.Valuer
func (p Prescriptions) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (p *Prescriptions) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*p = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("prescriptions: unsupported type %T", src)
	}
	return json.Unmarshal(raw, p)
}

// VisitFilter фильтр для списка визитов
type VisitFilter struct {
	PatientID  *uuid.UUID
	ProviderID *uuid.UUID
	Limit      int
	Offset     int
}
