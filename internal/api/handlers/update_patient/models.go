package update_patient

import (
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/patients/models"
)

// UpdatePatientRequest HTTP request model; меняются только переданные поля
type UpdatePatientRequest struct {
	FirstName             *string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName              *string `json:"lastName,omitempty" validate:"omitempty,max=100"`
	DateOfBirth           *string `json:"dateOfBirth,omitempty"`
	Email                 *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone                 *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address               *string `json:"address,omitempty"`
	InsuranceID           *string `json:"insuranceId,omitempty" validate:"omitempty,max=50"`
	EmergencyContactName  *string `json:"emergencyContactName,omitempty" validate:"omitempty,max=200"`
	EmergencyContactPhone *string `json:"emergencyContactPhone,omitempty" validate:"omitempty,max=20"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdatePatientRequest) ToServiceRequest() (*models.UpdatePatientRequest, error) {
	dob, err := handlers.ParseOptionalDate(r.DateOfBirth)
	if err != nil {
		return nil, err
	}

	return &models.UpdatePatientRequest{
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
