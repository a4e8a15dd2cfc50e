package list_visits

import (
	"net/http"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/visits/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(r *http.Request) (*models.ListVisitsRequest, error) {
	patientID, err := handlers.QueryUUID(r, "patientId")
	if err != nil {
		return nil, err
	}

	providerID, err := handlers.QueryUUID(r, "providerId")
	if err != nil {
		return nil, err
	}

	limit, offset, err := handlers.Paging(r)
	if err != nil {
		return nil, err
	}

	return &models.ListVisitsRequest{
		PatientID:  patientID,
		ProviderID: providerID,
		Limit:      limit,
		Offset:     offset,
	}, nil
}
