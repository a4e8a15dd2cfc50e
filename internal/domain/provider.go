package domain

import (
	"time"

	"github.com/google/uuid"
)

// Provider represents a clinician whose time can be booked
type Provider struct {
	ID            uuid.UUID
	FirstName     string
	LastName      string
	Specialty     string
	LicenseNumber string
	Email         string
	Phone         string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FullName returns "First Last"
func (p *Provider) FullName() string {
	return p.FirstName + " " + p.LastName
}

// ProviderFilter фильтр для списка врачей
type ProviderFilter struct {
	Specialty *string
	IsActive  *bool
	Limit     int
	Offset    int
}
