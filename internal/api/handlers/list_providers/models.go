package list_providers

import (
	"net/http"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/providers/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(r *http.Request) (*models.ListProvidersRequest, error) {
	isActive, err := handlers.QueryBool(r, "isActive")
	if err != nil {
		return nil, err
	}

	limit, offset, err := handlers.Paging(r)
	if err != nil {
		return nil, err
	}

	return &models.ListProvidersRequest{
		Specialty: handlers.QueryString(r, "specialty"),
		IsActive:  isActive,
		Limit:     limit,
		Offset:    offset,
	}, nil
}
