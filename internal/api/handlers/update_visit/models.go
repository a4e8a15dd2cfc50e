package update_visit

import (
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/visits/models"
)

// UpdateVisitRequest HTTP request model; меняются только переданные поля
type UpdateVisitRequest struct {
	ChiefComplaint   *string               `json:"chiefComplaint,omitempty"`
	Diagnosis        *string               `json:"diagnosis,omitempty"`
	TreatmentPlan    *string               `json:"treatmentPlan,omitempty"`
	Prescriptions    []domain.Prescription `json:"prescriptions,omitempty" validate:"omitempty,dive"`
	Notes            *string               `json:"notes,omitempty"`
	FollowUpRequired *bool                 `json:"followUpRequired,omitempty"`
	FollowUpDate     *string               `json:"followUpDate,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateVisitRequest) ToServiceRequest() (*models.UpdateVisitRequest, error) {
	followUpDate, err := handlers.ParseOptionalDate(r.FollowUpDate)
	if err != nil {
		return nil, err
	}

	req := &models.UpdateVisitRequest{
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
