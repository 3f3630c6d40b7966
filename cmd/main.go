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

	createBookingHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_booking"
	findFirstSlotHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/find_first_slot"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_booking"
	getContactBookingsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_contact_bookings"
	getScheduleHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_schedule"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	timeblockRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/timeblock"
	timeoffRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/timeoff"
	calendarClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/calendar"
	notifierClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/notifier"
	bookingsService "github.com/m04kA/SMC-AppointmentService/internal/service/bookings"
	constraintsService "github.com/m04kA/SMC-AppointmentService/internal/service/constraints"
	scheduleService "github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
	createBookingUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
	findFirstSlotUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/find_first_slot"
	getAvailableSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/civiltime"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
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

	log.Info("Starting SMC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона салона - единственная зона, в которой интерпретируются расписания
	civil, err := civiltime.New(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load shop timezone: %v", err)
	}
	log.Info("Shop timezone: %s", cfg.Booking.Timezone)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Репозитории работают через DBExecutor: с метриками или напрямую
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	scheduleRepository := scheduleRepo.NewRepository(executor)
	timeoffRepository := timeoffRepo.NewRepository(executor)
	timeblockRepository := timeblockRepo.NewRepository(executor)
	bookingRepository := bookingRepo.NewRepository(executor)
	serviceRepository := serviceRepo.NewRepository(executor)

	// Инициализируем интеграционных клиентов
	calendar := calendarClient.NewClient(
		cfg.Calendar.URL,
		cfg.Calendar.APIKey,
		time.Duration(cfg.Calendar.Timeout)*time.Second,
		log,
	)
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		cfg.Notifier.Enabled,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	if cfg.Metrics.Enabled {
		calendar = calendar.WithMetrics(metricsCollector)
		notifier = notifier.WithMetrics(metricsCollector)
	}
	log.Info("Integration clients initialized (Calendar=%s timeout=%ds, Notifier=%s timeout=%ds)",
		cfg.Calendar.URL, cfg.Calendar.Timeout, cfg.Notifier.URL, cfg.Notifier.Timeout)

	// Инициализируем сервисы
	constraintsSvc := constraintsService.New(
		scheduleRepository,
		timeoffRepository,
		timeblockRepository,
		bookingRepository,
		serviceRepository,
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		timeoffRepository,
		civil,
		realTime{},
		log,
	)

	// Параметры сетки слотов
	opts := availability.Options{
		StepMinutes:   cfg.Booking.StepMinutes,
		BufferMinutes: cfg.Booking.BufferMinutes,
	}

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(constraintsSvc, civil, opts, log)
	findFirstSlotUseCase := findFirstSlotUC.NewUseCase(
		constraintsSvc, civil, opts, cfg.Booking.FirstAvailableHorizonDays, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		constraintsSvc, calendar, notifier, bookingRepository, serviceRepository, civil, opts, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	findFirstSlot := findFirstSlotHandler.NewHandler(findFirstSlotUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getContactBookings := getContactBookingsHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты на диапазон дней
	api.HandleFunc("/services/{serviceId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Первый доступный слот
	api.HandleFunc("/services/{serviceId}/first-available",
		findFirstSlot.Handle).Methods(http.MethodGet)

	// Расписание салона и мастера
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История бронирований клиента
	protected.HandleFunc("/bookings", getContactBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

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

// realTime провайдер текущего времени для production
type realTime struct{}

func (realTime) Now() time.Time { return time.Now() }
