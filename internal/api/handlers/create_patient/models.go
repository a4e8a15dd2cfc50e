package create_patient

import (
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/patients/models"
)

// CreatePatientRequest HTTP request model
type CreatePatientRequest struct {
	FirstName             string  `json:"firstName" validate:"required,max=100"`
	LastName              string  `json:"lastName" validate:"required,max=100"`
	DateOfBirth           string  `json:"dateOfBirth" validate:"required"` // "1990-04-12"
	Email                 *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone                 string  `json:"phone" validate:"required,max=20"`
	Address               *string `json:"address,omitempty"`
	InsuranceID           *string `json:"insuranceId,omitempty" validate:"omitempty,max=50"`
	EmergencyContactName  *string `json:"emergencyContactName,omitempty" validate:"omitempty,max=200"`
	EmergencyContactPhone *string `json:"emergencyContactPhone,omitempty" validate:"omitempty,max=20"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreatePatientRequest) ToServiceRequest() (*models.CreatePatientRequest, error) {
	dob, err := handlers.ParseDate(r.DateOfBirth)
	if err != nil {
		return nil, err
	}

	return &models.CreatePatientRequest{
		FirstName:             r.FirstName,
		LastName:              r.LastName,
		DateOfBirth:           dob,
		Email:                 r.Email,
		Phone:                 r.Phone,
		Address:               r.Address,
		InsuranceID:           r.InsuranceID,
		EmergencyContactName:  r.EmergencyContactName,
		EmergencyContactPhone: r.EmergencyContactPhone,
	}, nil
}
