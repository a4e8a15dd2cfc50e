package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
	getAvailableSlots "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/usecase/get_available_slots"
)

const (
	msgInvalidProviderID   = "некорректный ID врача"
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidSlotDuration = "некорректная длительность слота"
	msgProviderNotFound    = "врач не найден"

	msgInvalidIncludeUnbookable = "некорректное значение includeUnbookable"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/available-slots
// Query params: date (required, YYYY-MM-DD), slotDuration (минуты, по умолчанию 30),
// includeUnbookable (true = не отбрасывать слоты ближе минимального времени до записи)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.PathUUID(r, "providerId")
	if err != nil {
		h.logger.Warn("GET /providers/{id}/available-slots - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /providers/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	slotDuration, err := handlers.QueryInt(r, "slotDuration")
	if err != nil {
		h.logger.Warn("GET /providers/{id}/available-slots - Invalid slot duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotDuration)
		return
	}

	includeUnbookable, err := handlers.QueryBool(r, "includeUnbookable")
	if err != nil {
		h.logger.Warn("GET /providers/{id}/available-slots - Invalid includeUnbookable: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIncludeUnbookable)
		return
	}

	useCaseReq, err := ToUseCaseRequest(providerID, dateStr, slotDuration, includeUnbookable != nil && *includeUnbookable)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrProviderNotFound):
			h.logger.Warn("GET /providers/{id}/available-slots - Provider not found: provider_id=%s", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case domain.IsCallerError(err):
			h.logger.Warn("GET /providers/{id}/available-slots - Invalid request: provider_id=%s, error=%v", providerID, err)
			handlers.RespondDomainError(w, err)

		default:
			h.logger.Error("GET /providers/{id}/available-slots - Failed to get slots: provider_id=%s, date=%s, error=%v",
				providerID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/available-slots - Slots retrieved successfully: provider_id=%s, date=%s, slots_count=%d",
		providerID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
