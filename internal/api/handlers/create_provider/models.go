package create_provider

import (
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/providers/models"
)

// CreateProviderRequest HTTP request model
type CreateProviderRequest struct {
	FirstName     string `json:"firstName" validate:"required,max=100"`
	LastName      string `json:"lastName" validate:"required,max=100"`
	Specialty     string `json:"specialty" validate:"required,max=100"`
	LicenseNumber string `json:"licenseNumber" validate:"required,max=50"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Phone         string `json:"phone" validate:"required,max=20"`
	IsActive      *bool  `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateProviderRequest) ToServiceRequest() *models.CreateProviderRequest {
	return &models.CreateProviderRequest{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Specialty:     r.Specialty,
		LicenseNumber: r.LicenseNumber,
		Email:         r.Email,
		Phone:         r.Phone,
		IsActive:      r.IsActive,
	}
}
