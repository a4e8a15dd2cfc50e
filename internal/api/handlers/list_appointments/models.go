package list_appointments

import (
	"net/http"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(r *http.Request) (*models.ListAppointmentsRequest, error) {
	patientID, err := handlers.QueryUUID(r, "patientId")
	if err != nil {
		return nil, err
	}

	providerID, err := handlers.QueryUUID(r, "providerId")
	if err != nil {
		return nil, err
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		return nil, err
	}

	limit, offset, err := handlers.Paging(r)
	if err != nil {
		return nil, err
	}

	return &models.ListAppointmentsRequest{
		PatientID:  patientID,
		ProviderID: providerID,
		Date:       date,
		Status:     handlers.QueryString(r, "status"),
		Limit:      limit,
		Offset:     offset,
	}, nil
}
