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

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	confirmPendingHandler "github.com/m04kA/SMC-ClinicReservationService/internal/api/handlers/confirm_pending"
	confirmRescheduledHandler "github.com/m04kA/SMC-ClinicReservationService/internal/api/handlers/confirm_rescheduled"
	createBlockedTimeHandler "github.com/m04kA/SMC-ClinicReservationService/internal/api/handlers/create_blocked_time"
	createReservationHandler "github.com/m04kA/SMC-ClinicReservationService/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ClinicReservationService/internal/api/handlers/get_available_slots"
	getBlockedTimesHandler "github.com/m04kA/SMC-ClinicReservationService/internal/api/handlers/get_blocked_times"
	getClientReservationsHandler "github.com/m04kA/SMC-ClinicReservationService/internal/api/handlers/get_client_reservations"
	getEmployeeReservationsHandler "github.com/m04kA/SMC-ClinicReservationService/internal/api/handlers/get_employee_reservations"
	getReservationHandler "github.com/m04kA/SMC-ClinicReservationService/internal/api/handlers/get_reservation"
	getReservationsHandler "github.com/m04kA/SMC-ClinicReservationService/internal/api/handlers/get_reservations"
	updateStatusHandler "github.com/m04kA/SMC-ClinicReservationService/internal/api/handlers/update_reservation_status"
	"github.com/m04kA/SMC-ClinicReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicReservationService/internal/config"
	amqpBroker "github.com/m04kA/SMC-ClinicReservationService/internal/infra/broker/amqp"
	blockedTimeRepo "github.com/m04kA/SMC-ClinicReservationService/internal/infra/storage/blockedtime"
	notificationRepo "github.com/m04kA/SMC-ClinicReservationService/internal/infra/storage/notification"
	reservationRepo "github.com/m04kA/SMC-ClinicReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ClinicReservationService/internal/infra/storage/schema"
	animalsClient "github.com/m04kA/SMC-ClinicReservationService/internal/integrations/animals"
	identityClient "github.com/m04kA/SMC-ClinicReservationService/internal/integrations/identity"
	blockedTimesService "github.com/m04kA/SMC-ClinicReservationService/internal/service/blockedtimes"
	notificationsService "github.com/m04kA/SMC-ClinicReservationService/internal/service/notifications"
	reservationsService "github.com/m04kA/SMC-ClinicReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/scheduling"
	confirmPendingUC "github.com/m04kA/SMC-ClinicReservationService/internal/usecase/confirm_pending"
	confirmRescheduledUC "github.com/m04kA/SMC-ClinicReservationService/internal/usecase/confirm_rescheduled"
	createReservationUC "github.com/m04kA/SMC-ClinicReservationService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-ClinicReservationService/internal/usecase/get_available_slots"
	updateStatusUC "github.com/m04kA/SMC-ClinicReservationService/internal/usecase/update_reservation_status"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/logger"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-ClinicReservationService...")
	log.Info("Configuration loaded from %s", configPath)

	policy, err := cfg.Scheduling.ToPolicy()
	if err != nil {
		log.Fatal("Invalid scheduling configuration: %v", err)
	}
	log.Info("Scheduling policy: hours=%s, weekdays=%v, buffer=%dm, granularity=%dm, notification_failure=%s",
		policy.Hours.Window(), policy.Hours.Weekdays, policy.ConflictBufferMinutes,
		policy.SlotGranularityMinutes, policy.NotificationFailure)

	// Инициализируем метрики (если включены). nil-коллектор ничего не пишет
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (driver=%s)", cfg.Database.Driver)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	dialect := psqlbuilder.ForDriver(cfg.Database.Driver)

	if cfg.Database.AutoMigrate {
		if err := schema.Apply(context.Background(), wrappedDB); err != nil {
			log.Fatal("Failed to apply schema: %v", err)
		}
		log.Info("Database schema applied")
	}

	// Инициализируем интеграционных клиентов
	identity := identityClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	animals := animalsClient.NewClient(
		cfg.AnimalService.URL,
		time.Duration(cfg.AnimalService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (IdentityService=%s timeout=%ds, AnimalService=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout, cfg.AnimalService.URL, cfg.AnimalService.Timeout)

	// Репозитории и менеджер транзакций
	reservationRepository := reservationRepo.NewRepository(wrappedDB, dialect)
	blockedTimeRepository := blockedTimeRepo.NewRepository(wrappedDB, dialect)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Отправитель уведомлений
	sender, closeSender, err := newSender(cfg, db, log)
	if err != nil {
		log.Fatal("Failed to initialize notification sender: %v", err)
	}
	defer closeSender()

	// Инициализируем сервисы
	notifier := notificationsService.NewService(sender, identity, metricsCollector, policy.NotificationFailure, log)
	checker := scheduling.NewChecker(reservationRepository, blockedTimeRepository, policy, log)
	resolver := scheduling.NewResolver(identity, animals, log)
	reservationSvc := reservationsService.NewService(reservationRepository, identity, log)
	blockedTimeSvc := blockedTimesService.NewService(blockedTimeRepository, identity, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository, checker, resolver, notifier, txMgr, metricsCollector, log,
	)
	updateStatusUseCase := updateStatusUC.NewUseCase(
		reservationRepository, checker, resolver, notifier, txMgr, metricsCollector, log,
	)
	confirmPendingUseCase := confirmPendingUC.NewUseCase(
		reservationRepository, checker, resolver, notifier, txMgr, metricsCollector, log,
	)
	confirmRescheduledUseCase := confirmRescheduledUC.NewUseCase(
		reservationRepository, checker, notifier, txMgr, metricsCollector, log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(reservationRepository, policy, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateStatus := updateStatusHandler.NewHandler(updateStatusUseCase, log)
	confirmPending := confirmPendingHandler.NewHandler(confirmPendingUseCase, log)
	confirmRescheduled := confirmRescheduledHandler.NewHandler(confirmRescheduledUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getReservations := getReservationsHandler.NewHandler(reservationSvc, log)
	getClientReservations := getClientReservationsHandler.NewHandler(reservationSvc, log)
	getEmployeeReservations := getEmployeeReservationsHandler.NewHandler(reservationSvc, log)
	createBlockedTime := createBlockedTimeHandler.NewHandler(blockedTimeSvc, log)
	getBlockedTimes := getBlockedTimesHandler.NewHandler(blockedTimeSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты сотрудника на дату
	api.HandleFunc("/employees/{employeeId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Блокировки на дату
	api.HandleFunc("/blocked-times", getBlockedTimes.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", getReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/status", updateStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/confirm-pending", confirmPending.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/confirm-rescheduled", confirmRescheduled.Handle).Methods(http.MethodPatch)

	// --- Списки по клиенту и сотруднику ---
	protected.HandleFunc("/clients/{clientId}/reservations", getClientReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/employees/{employeeId}/reservations", getEmployeeReservations.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	protected.HandleFunc("/blocked-times", createBlockedTime.Handle).Methods(http.MethodPost)

	handler := middleware.CORS(middleware.CORSOptions{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: cfg.CORS.AllowedMethods,
		AllowedHeaders: cfg.CORS.AllowedHeaders,
		MaxAge:         cfg.CORS.MaxAge,
	})(r)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// newSender выбирает отправителя уведомлений по notifications.driver
func newSender(cfg *config.Config, db *sql.DB, log *logger.Logger) (notificationsService.Sender, func(), error) {
	switch cfg.Notifications.Driver {
	case config.NotificationDriverAMQP:
		publisher, err := amqpBroker.Dial(cfg.Notifications.AMQPURL, cfg.Notifications.Exchange)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Notifications are published to AMQP exchange %s", cfg.Notifications.Exchange)
		return publisher, func() {
			if err := publisher.Close(); err != nil {
				log.Error("Failed to close AMQP publisher: %v", err)
			}
		}, nil

	case config.NotificationDriverLog:
		log.Info("Notifications are written to the log only")
		return notificationsService.NewLogSender(log), func() {}, nil

	default:
		log.Info("Notifications are stored in the outbox table")
		return notificationRepo.NewRepository(sqlx.NewDb(db, cfg.Database.Driver)), func() {}, nil
	}
}
