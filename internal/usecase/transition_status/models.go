package transition_status

import (
	"github.com/google/uuid"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/domain"
)

// Request модель запроса на смену статуса приёма
type Request struct {
	AppointmentID      uuid.UUID
	NewStatus          string  // Сырое значение из запроса, проверяется domain.ParseStatus
	CancellationReason *string // Обязательна для cancelled
}

// Response модель ответа с обновлённым приёмом
type Response struct {
	Appointment  *domain.Appointment
	VisitCreated bool // Создана ли заготовка визита при завершении
}
