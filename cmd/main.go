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
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/IbrahimTareq/masjidaa-booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/IbrahimTareq/masjidaa-booking-service/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/IbrahimTareq/masjidaa-booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/IbrahimTareq/masjidaa-booking-service/internal/api/handlers/get_booking"
	getBookingByReferenceHandler "github.com/IbrahimTareq/masjidaa-booking-service/internal/api/handlers/get_booking_by_reference"
	getBookingTypeHandler "github.com/IbrahimTareq/masjidaa-booking-service/internal/api/handlers/get_booking_type"
	getCalendarHandler "github.com/IbrahimTareq/masjidaa-booking-service/internal/api/handlers/get_calendar"
	getTenantBookingsHandler "github.com/IbrahimTareq/masjidaa-booking-service/internal/api/handlers/get_tenant_bookings"
	updateBookingStatusHandler "github.com/IbrahimTareq/masjidaa-booking-service/internal/api/handlers/update_booking_status"
	"github.com/IbrahimTareq/masjidaa-booking-service/internal/api/middleware"
	"github.com/IbrahimTareq/masjidaa-booking-service/internal/config"
	availabilityRepo "github.com/IbrahimTareq/masjidaa-booking-service/internal/infra/storage/availability"
	bookingRepo "github.com/IbrahimTareq/masjidaa-booking-service/internal/infra/storage/booking"
	bookingTypeRepo "github.com/IbrahimTareq/masjidaa-booking-service/internal/infra/storage/bookingtype"
	tenantRepo "github.com/IbrahimTareq/masjidaa-booking-service/internal/infra/storage/tenant"
	notifierClient "github.com/IbrahimTareq/masjidaa-booking-service/internal/integrations/notifier"
	"github.com/IbrahimTareq/masjidaa-booking-service/internal/jobs"
	bookingsService "github.com/IbrahimTareq/masjidaa-booking-service/internal/service/bookings"
	bookingTypesService "github.com/IbrahimTareq/masjidaa-booking-service/internal/service/bookingtypes"
	createBookingUC "github.com/IbrahimTareq/masjidaa-booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/IbrahimTareq/masjidaa-booking-service/internal/usecase/get_available_slots"
	getCalendarUC "github.com/IbrahimTareq/masjidaa-booking-service/internal/usecase/get_calendar"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/dbmetrics"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/logger"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/metrics"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/simpletxmanager"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/txmanager"
)

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

	log.Info("Starting masjidaa-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
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
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Клиент сервиса уведомлений (опционален: без него бронирования
	// создаются, но письма гостям не уходят)
	var notifier createBookingUC.NotifierClient
	if cfg.Notifier.Enabled {
		notifier = notifierClient.NewClient(
			cfg.Notifier.URL,
			time.Duration(cfg.Notifier.Timeout)*time.Second,
			log,
		)
		log.Info("Notifier client initialized (url=%s, timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)
	} else {
		log.Warn("Notifier disabled: booking confirmations will not be sent")
	}

	// Инициализируем репозитории и транзакционный менеджер (с метриками или без)
	var (
		tenantRepository       *tenantRepo.Repository
		bookingTypeRepository  *bookingTypeRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		bookingRepository      *bookingRepo.Repository
	)

	var txMgr createBookingUC.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		tenantRepository = tenantRepo.NewRepository(wrappedDB)
		bookingTypeRepository = bookingTypeRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB, metricsCollector)
	} else {
		tenantRepository = tenantRepo.NewRepository(db)
		bookingTypeRepository = bookingTypeRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		tenantRepository,
		log,
	)
	bookingTypesSvc := bookingTypesService.NewService(
		tenantRepository,
		bookingTypeRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		tenantRepository,
		bookingTypeRepository,
		availabilityRepository,
		bookingRepository,
		notifier,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		tenantRepository,
		bookingTypeRepository,
		availabilityRepository,
		bookingRepository,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(
		tenantRepository,
		bookingTypeRepository,
		availabilityRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingByReference := getBookingByReferenceHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getTenantBookings := getTenantBookingsHandler.NewHandler(bookingSvc, log)
	getBookingType := getBookingTypeHandler.NewHandler(bookingTypesSvc, log)

	// Фоновая задача: отклонение просроченных ожидающих бронирований
	expirePendingJob := jobs.NewExpirePendingJob(bookingRepository, log)
	if err := expirePendingJob.Start(cfg.Jobs.ExpirePendingSchedule); err != nil {
		log.Fatal("Failed to start expire pending job: %v", err)
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (гостевой поток, без аутентификации)
	// ============================================================

	// Типы бронирования мечети
	api.HandleFunc("/tenants/{tenantSlug}/booking-types",
		getBookingType.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/tenants/{tenantSlug}/booking-types/{bookingTypeSlug}",
		getBookingType.Handle).Methods(http.MethodGet)

	// Календарь доступности на месяц
	api.HandleFunc("/tenants/{tenantSlug}/booking-types/{bookingTypeSlug}/calendar",
		getCalendar.Handle).Methods(http.MethodGet)

	// Слоты на конкретную дату
	api.HandleFunc("/tenants/{tenantSlug}/booking-types/{bookingTypeSlug}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования гостем
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Просмотр бронирования гостем по UUID из письма-подтверждения
	api.HandleFunc("/bookings/reference/{reference}", getBookingByReference.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Подтверждение или отклонение запроса
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Список бронирований мечети
	protected.HandleFunc("/tenants/{tenantSlug}/bookings", getTenantBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	// Останавливаем фоновые задачи
	expirePendingJob.Stop()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
