package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/middleware"
)

// Handler обработчик одного маршрута
type Handler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

// Handlers все обработчики API
type Handlers struct {
	Health Handler

	BookAppointment       Handler
	ListAppointments      Handler
	GetAppointment        Handler
	UpdateStatus          Handler
	CancelAppointment     Handler
	RescheduleAppointment Handler
	GetAvailableSlots     Handler

	CreatePatient Handler
	ListPatients  Handler
	GetPatient    Handler
	UpdatePatient Handler

	CreateProvider Handler
	ListProviders  Handler
	GetProvider    Handler
	UpdateProvider Handler
	AddSchedule    Handler
	ListSchedules  Handler
	DeleteSchedule Handler

	CreateVisit Handler
	ListVisits  Handler
	GetVisit    Handler
	UpdateVisit Handler

	DailyLoad           Handler
	ProviderUtilization Handler
	NoShowTrend         Handler
}

// RouterOptions параметры роутера
type RouterOptions struct {
	// Metrics nil = метрики выключены
	Metrics       middleware.HTTPMetrics
	MetricsPath   string
	MetricsHandle http.Handler
	Logger        middleware.Logger
}

// apiPrefix префикс версии API.
// Маршруты висят на корневом роутере, иначе несовпадение метода даёт 404 вместо 405.
const apiPrefix = "/api/v1"

// NewRouter собирает маршруты /api/v1
func NewRouter(h Handlers, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.Logging(opts.Logger))
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}

	// Служебные маршруты
	if opts.MetricsHandle != nil {
		r.Handle(opts.MetricsPath, opts.MetricsHandle).Methods(http.MethodGet)
	}
	r.HandleFunc("/health", h.Health.Handle).Methods(http.MethodGet)

	// --- Приёмы ---
	r.HandleFunc(apiPrefix+"/appointments", h.BookAppointment.Handle).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/appointments", h.ListAppointments.Handle).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/appointments/{appointmentId}", h.GetAppointment.Handle).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/appointments/{appointmentId}/status", h.UpdateStatus.Handle).Methods(http.MethodPatch)
	r.HandleFunc(apiPrefix+"/appointments/{appointmentId}/cancel", h.CancelAppointment.Handle).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/appointments/{appointmentId}/reschedule", h.RescheduleAppointment.Handle).Methods(http.MethodPatch)

	// --- Пациенты ---
	r.HandleFunc(apiPrefix+"/patients", h.CreatePatient.Handle).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/patients", h.ListPatients.Handle).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/patients/{patientId}", h.GetPatient.Handle).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/patients/{patientId}", h.UpdatePatient.Handle).Methods(http.MethodPatch)

	// --- Врачи и расписание ---
	r.HandleFunc(apiPrefix+"/providers", h.CreateProvider.Handle).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/providers", h.ListProviders.Handle).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/providers/{providerId}", h.GetProvider.Handle).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/providers/{providerId}", h.UpdateProvider.Handle).Methods(http.MethodPatch)
	r.HandleFunc(apiPrefix+"/providers/{providerId}/available-slots", h.GetAvailableSlots.Handle).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/providers/{providerId}/schedules", h.AddSchedule.Handle).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/providers/{providerId}/schedules", h.ListSchedules.Handle).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/providers/{providerId}/schedules/{scheduleId}", h.DeleteSchedule.Handle).Methods(http.MethodDelete)

	// --- Визиты ---
	r.HandleFunc(apiPrefix+"/visits", h.CreateVisit.Handle).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/visits", h.ListVisits.Handle).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/visits/{visitId}", h.GetVisit.Handle).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/visits/{visitId}", h.UpdateVisit.Handle).Methods(http.MethodPatch)

	// --- Аналитика ---
	r.HandleFunc(apiPrefix+"/analytics/daily-load", h.DailyLoad.Handle).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/analytics/provider-utilization", h.ProviderUtilization.Handle).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/analytics/no-shows", h.NoShowTrend.Handle).Methods(http.MethodGet)

	return r
}
