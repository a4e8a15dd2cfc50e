package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api"
	addScheduleHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/add_schedule"
	bookAppointmentHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/book_appointment"
	cancelAppointmentHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/cancel_appointment"
	createPatientHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/create_patient"
	createProviderHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/create_provider"
	createVisitHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/create_visit"
	deleteScheduleHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/delete_schedule"
	getAppointmentHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/get_available_slots"
	getDailyLoadHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/get_daily_load"
	getNoShowTrendHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/get_no_show_trend"
	getPatientHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/get_patient"
	getProviderHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/get_provider"
	getUtilizationHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/get_provider_utilization"
	getVisitHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/get_visit"
	healthHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/health"
	listAppointmentsHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/list_appointments"
	listPatientsHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/list_patients"
	listProvidersHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/list_providers"
	listSchedulesHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/list_schedules"
	listVisitsHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/list_visits"
	rescheduleHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/reschedule_appointment"
	updatePatientHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/update_patient"
	updateProviderHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/update_provider"
	updateStatusHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/update_status"
	updateVisitHandler "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/api/handlers/update_visit"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/config"
	analyticsRepo "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/infra/storage/analytics"
	appointmentRepo "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/infra/storage/appointment"
	patientRepo "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/infra/storage/patient"
	providerRepo "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/infra/storage/provider"
	scheduleRepo "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/infra/storage/schedule"
	visitRepo "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/infra/storage/visit"
	analyticsService "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/analytics"
	appointmentsService "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/appointments"
	patientsService "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/patients"
	providersService "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/providers"
	visitsService "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/service/visits"
	bookAppointmentUC "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/usecase/book_appointment"
	getAvailableSlotsUC "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/usecase/get_available_slots"
	rescheduleAppointmentUC "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/usecase/reschedule_appointment"
	transitionStatusUC "github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/internal/usecase/transition_status"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/dbmetrics"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/logger"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/metrics"
	"github.com/Samallday11/Healthcare-Appointment-Patient-Flow-System/pkg/txmanager"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			return runServer(cfg, log)
		},
	}
}

func runServer(cfg *config.Config, log *logger.Logger) error {
	log.Info("Starting healthcare-api...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := openDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Обёртка над пулом считает запросы и состояние соединений; без метрик работает как прокси
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txManager := txmanager.NewTransactionManager(wrappedDB, metricsCollector)

	router := buildRouter(cfg, wrappedDB, txManager, metricsCollector, log)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Info("Received %s, shutting down server...", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server exited")
	return nil
}

// buildRouter собирает репозитории, use cases, сервисы и обработчики
func buildRouter(
	cfg *config.Config,
	db *dbmetrics.DB,
	txManager *txmanager.TransactionManager,
	metricsCollector *metrics.Metrics,
	log *logger.Logger,
) *mux.Router {
	policy := cfg.Booking.Policy()

	// Репозитории
	appointments := appointmentRepo.NewRepository(db)
	patients := patientRepo.NewRepository(db)
	providers := providerRepo.NewRepository(db)
	schedules := scheduleRepo.NewRepository(db)
	visits := visitRepo.NewRepository(db)
	stats := analyticsRepo.NewRepository(db)

	// Use cases
	bookAppointment := bookAppointmentUC.NewUseCase(
		appointments,
		schedules,
		providers,
		patients,
		txManager,
		metricsCollector,
		policy,
		log,
	)
	getAvailableSlots := getAvailableSlotsUC.NewUseCase(
		appointments,
		schedules,
		providers,
		metricsCollector,
		policy,
		log,
	)
	rescheduleAppointment := rescheduleAppointmentUC.NewUseCase(
		appointments,
		schedules,
		txManager,
		policy,
		log,
	)
	transitionStatus := transitionStatusUC.NewUseCase(
		appointments,
		visits,
		txManager,
		metricsCollector,
		log,
	)

	// Сервисы
	appointmentSvc := appointmentsService.NewService(appointments, log)
	patientSvc := patientsService.NewService(patients, log)
	providerSvc := providersService.NewService(providers, schedules, log)
	visitSvc := visitsService.NewService(visits, appointments, log)
	analyticsSvc := analyticsService.NewService(stats, log)

	handlers := api.Handlers{
		Health: healthHandler.NewHandler(db, log),

		BookAppointment:       bookAppointmentHandler.NewHandler(bookAppointment, log),
		ListAppointments:      listAppointmentsHandler.NewHandler(appointmentSvc, log),
		GetAppointment:        getAppointmentHandler.NewHandler(appointmentSvc, log),
		UpdateStatus:          updateStatusHandler.NewHandler(transitionStatus, log),
		CancelAppointment:     cancelAppointmentHandler.NewHandler(transitionStatus, log),
		RescheduleAppointment: rescheduleHandler.NewHandler(rescheduleAppointment, log),
		GetAvailableSlots:     getAvailableSlotsHandler.NewHandler(getAvailableSlots, log),

		CreatePatient: createPatientHandler.NewHandler(patientSvc, log),
		ListPatients:  listPatientsHandler.NewHandler(patientSvc, log),
		GetPatient:    getPatientHandler.NewHandler(patientSvc, log),
		UpdatePatient: updatePatientHandler.NewHandler(patientSvc, log),

		CreateProvider: createProviderHandler.NewHandler(providerSvc, log),
		ListProviders:  listProvidersHandler.NewHandler(providerSvc, log),
		GetProvider:    getProviderHandler.NewHandler(providerSvc, log),
		UpdateProvider: updateProviderHandler.NewHandler(providerSvc, log),
		AddSchedule:    addScheduleHandler.NewHandler(providerSvc, log),
		ListSchedules:  listSchedulesHandler.NewHandler(providerSvc, log),
		DeleteSchedule: deleteScheduleHandler.NewHandler(providerSvc, log),

		CreateVisit: createVisitHandler.NewHandler(visitSvc, log),
		ListVisits:  listVisitsHandler.NewHandler(visitSvc, log),
		GetVisit:    getVisitHandler.NewHandler(visitSvc, log),
		UpdateVisit: updateVisitHandler.NewHandler(visitSvc, log),

		DailyLoad:           getDailyLoadHandler.NewHandler(analyticsSvc, log),
		ProviderUtilization: getUtilizationHandler.NewHandler(analyticsSvc, log),
		NoShowTrend:         getNoShowTrendHandler.NewHandler(analyticsSvc, log),
	}

	opts := api.RouterOptions{Logger: log}
	// Метрики HTTP и /metrics только при включённых метриках
	if metricsCollector != nil {
		opts.Metrics = metricsCollector
		opts.MetricsPath = cfg.Metrics.Path
		opts.MetricsHandle = promhttp.Handler()
	}

	return api.NewRouter(handlers, opts)
}
