package create_visit

import (
	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/visits/models"
)

// CreateVisitRequest HTTP request model
type CreateVisitRequest struct {
	AppointmentID    uuid.UUID             `json:"appointmentId" validate:"required"`
	VisitDate        *string               `json:"visitDate,omitempty"`
	ChiefComplaint   *string               `json:"chiefComplaint,omitempty"`
	Diagnosis        *string               `json:"diagnosis,omitempty"`
	TreatmentPlan    *string               `json:"treatmentPlan,omitempty"`
	Prescriptions    []domain.Prescription `json:"prescriptions,omitempty" validate:"omitempty,dive"`
	Notes            *string               `json:"notes,omitempty"`
	FollowUpRequired *bool                 `json:"followUpRequired,omitempty"`
	FollowUpDate     *string               `json:"followUpDate,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateVisitRequest) ToServiceRequest() (*models.CreateVisitRequest, error) {
	visitDate, err := handlers.ParseOptionalDate(r.VisitDate)
	if err != nil {
		return nil, err
	}

	followUpDate, err := handlers.ParseOptionalDate(r.FollowUpDate)
	if err != nil {
		return nil, err
	}

	req := &models.CreateVisitRequest{
		AppointmentID: r.AppointmentID,
		VisitDate:     visitDate,
		ClinicalFields: models.ClinicalFields{
			ChiefComplaint:   r.ChiefComplaint,
			Diagnosis:        r.Diagnosis,
			TreatmentPlan:    r.TreatmentPlan,
			Notes:            r.Notes,
			FollowUpRequired: r.FollowUpRequired,
			FollowUpDate:     followUpDate,
		},
	}
	if r.Prescriptions != nil {
		p := domain.Prescriptions(r.Prescriptions)
		req.Prescriptions = &p
	}

	return req, nil
}
