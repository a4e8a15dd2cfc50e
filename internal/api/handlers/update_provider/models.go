package update_provider

import (
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/providers/models"
)

// UpdateProviderRequest HTTP request model; меняются только переданные поля
type UpdateProviderRequest struct {
	FirstName     *string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName      *string `json:"lastName,omitempty" validate:"omitempty,max=100"`
	Specialty     *string `json:"specialty,omitempty" validate:"omitempty,max=100"`
	LicenseNumber *string `json:"licenseNumber,omitempty" validate:"omitempty,max=50"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateProviderRequest) ToServiceRequest() *models.UpdateProviderRequest {
	return &models.UpdateProviderRequest{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Specialty:     r.Specialty,
		LicenseNumber: r.LicenseNumber,
		Email:         r.Email,
		Phone:         r.Phone,
		IsActive:      r.IsActive,
	}
}
