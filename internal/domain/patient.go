package domain

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a person receiving care
type Patient struct {
	ID                    uuid.UUID
	FirstName             string
	LastName              string
	DateOfBirth           time.Time
	Email                 *string
	Phone                 string
	Address               *string
	InsuranceID           *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// FullName returns "First Last"
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// PatientFilter фильтр для поиска пациентов
type PatientFilter struct {
	Search *string // ILIKE по имени, фамилии, email и телефону
	Limit  int
	Offset int
}
