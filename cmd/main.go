package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createClientHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/create_client"
	createParkingHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/create_parking"
	createReservationHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/create_reservation"
	deleteClientHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/delete_client"
	deleteParkingHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/delete_parking"
	deleteReservationHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/delete_reservation"
	getDashboardHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/get_dashboard"
	getParkingHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/get_parking"
	getStatusHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/get_status"
	listClientsHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/list_clients"
	listParkingsHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/list_parkings"
	listRegistrationsHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/list_registrations"
	listReservationsHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/list_reservations"
	loginHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/logout"
	quoteReservationHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/quote_reservation"
	registerHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/register"
	registerClientHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/register_client"
	updateParkingHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/update_parking"
	updateReservationStatusHandler "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers/update_reservation_status"
	"github.com/m04kA/SMC-ParkingPortal/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingPortal/internal/config"
	registrationRepo "github.com/m04kA/SMC-ParkingPortal/internal/infra/storage/registration"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
	"github.com/m04kA/SMC-ParkingPortal/internal/jobs/healthmonitor"
	"github.com/m04kA/SMC-ParkingPortal/internal/migrations"
	authService "github.com/m04kA/SMC-ParkingPortal/internal/service/auth"
	clientsService "github.com/m04kA/SMC-ParkingPortal/internal/service/clients"
	parkingsService "github.com/m04kA/SMC-ParkingPortal/internal/service/parkings"
	reservationsService "github.com/m04kA/SMC-ParkingPortal/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-ParkingPortal/internal/usecase/create_reservation"
	getDashboardUC "github.com/m04kA/SMC-ParkingPortal/internal/usecase/get_dashboard"
	quoteReservationUC "github.com/m04kA/SMC-ParkingPortal/internal/usecase/quote_reservation"
	registerClientUC "github.com/m04kA/SMC-ParkingPortal/internal/usecase/register_client"
	"github.com/m04kA/SMC-ParkingPortal/pkg/logger"
	"github.com/m04kA/SMC-ParkingPortal/pkg/metrics"
)

// ledger журнал регистраций: Postgres или память процесса
type ledger interface {
	registerClientUC.RegistrationLedger
	listRegistrationsHandler.RegistrationLedger
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ParkingPortal...")
	log.Info("Configuration loaded from config.toml")

	location, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Server.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var recorder parkingapi.Recorder
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		recorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Клиент parking API
	apiClient := parkingapi.NewClient(parkingapi.Options{
		BaseURL:                 cfg.Upstream.URL,
		UploadsURL:              cfg.Upstream.UploadsURL,
		Timeout:                 time.Duration(cfg.Upstream.Timeout) * time.Second,
		TreatEmptyAsUnavailable: cfg.Fallback.TreatEmptyAsUnavailable,
		LocalTokenSecret:        cfg.Auth.LocalTokenSecret,
	}, log, recorder)
	log.Info("Parking API client initialized (url=%s, timeout=%ds, empty_as_unavailable=%t)",
		cfg.Upstream.URL, cfg.Upstream.Timeout, cfg.Fallback.TreatEmptyAsUnavailable)

	// Журнал регистраций
	var registrations ledger
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if err := migrations.Run(db, cfg.Database.MigrationsPath); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Migrations applied from %s", cfg.Database.MigrationsPath)

		registrations = registrationRepo.NewRepository(db)
	} else {
		registrations = registrationRepo.NewMemoryRepository()
		log.Warn("Database disabled, registrations are kept in memory")
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(apiClient, log)
	parkingSvc := parkingsService.NewService(apiClient, log)
	reservationSvc := reservationsService.NewService(apiClient, log)
	clientSvc := clientsService.NewService(apiClient, apiClient, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(apiClient, apiClient, location, log)
	quoteReservationUseCase := quoteReservationUC.NewUseCase(apiClient, log)
	registerClientUseCase := registerClientUC.NewUseCase(apiClient, apiClient, registrations, log)
	getDashboardUseCase := getDashboardUC.NewUseCase(apiClient, apiClient, apiClient, log)

	// Инициализируем handlers
	getStatus := getStatusHandler.NewHandler(apiClient, log)
	login := loginHandler.NewHandler(authSvc, log)
	register := registerHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler(authSvc)
	listParkings := listParkingsHandler.NewHandler(parkingSvc, log)
	getParking := getParkingHandler.NewHandler(parkingSvc, log)
	quoteReservation := quoteReservationHandler.NewHandler(quoteReservationUseCase, location, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, location, log)
	createParking := createParkingHandler.NewHandler(parkingSvc, log)
	updateParking := updateParkingHandler.NewHandler(parkingSvc, log)
	deleteParking := deleteParkingHandler.NewHandler(parkingSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, location, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	registerClient := registerClientHandler.NewHandler(registerClientUseCase, log)
	listRegistrations := listRegistrationsHandler.NewHandler(registrations, log)
	listClients := listClientsHandler.NewHandler(clientSvc, log)
	createClient := createClientHandler.NewHandler(clientSvc, location, log)
	deleteClient := deleteClientHandler.NewHandler(clientSvc, log)
	getDashboard := getDashboardHandler.NewHandler(getDashboardUseCase, location, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix; токен из Authorization привязывается к запросу
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Session)

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/status", getStatus.Handle).Methods(http.MethodGet)

	// --- Авторизация ---
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// --- Парковки ---
	api.HandleFunc("/parkings", listParkings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/parkings/{parkingId}", getParking.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/reservations/quote", quoteReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (токен передается в parking API, проверку делает он)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()

	// --- Парковки ---
	admin.HandleFunc("/parkings", createParking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/parkings/{parkingId}", updateParking.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/parkings/{parkingId}", deleteParking.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/reservations/{reservationId}/client", registerClient.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/registrations", listRegistrations.Handle).Methods(http.MethodGet)

	// --- Клиенты ---
	admin.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/clients/{clientId}", deleteClient.Handle).Methods(http.MethodDelete)

	// --- Панель администратора ---
	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// CORS и recovery оборачивают весь роутер, чтобы preflight не доходил до mux
	handler := middleware.Recovery(log)(middleware.CORS(cfg.Server.CORSOrigins)(r))

	// Фоновый мониторинг доступности parking API
	var monitor *healthmonitor.Monitor
	if cfg.Monitor.Enabled && cfg.Metrics.Enabled {
		monitor, err = healthmonitor.New(
			apiClient,
			metricsCollector,
			cfg.Monitor.Schedule,
			time.Duration(cfg.Upstream.Timeout)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to create health monitor: %v", err)
		}
		monitor.Start()
		log.Info("Health monitor started (schedule=%s)", cfg.Monitor.Schedule)
	} else if cfg.Monitor.Enabled {
		log.Warn("Health monitor requires metrics, skipped")
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	// Останавливаем мониторинг и ждем текущую проверку
	if monitor != nil {
		select {
		case <-monitor.Stop().Done():
		case <-shutdownCtx.Done():
			log.Warn("Health monitor did not stop in time")
		}
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
