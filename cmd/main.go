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

	createAppointmentHandler "github.com/royal-barbershop/booking-service/internal/api/handlers/create_appointment"
	getAvailableSlotsHandler "github.com/royal-barbershop/booking-service/internal/api/handlers/get_available_slots"
	getBookedDatesHandler "github.com/royal-barbershop/booking-service/internal/api/handlers/get_booked_dates"
	getDayAppointmentsHandler "github.com/royal-barbershop/booking-service/internal/api/handlers/get_day_appointments"
	getServicesHandler "github.com/royal-barbershop/booking-service/internal/api/handlers/get_services"
	"github.com/royal-barbershop/booking-service/internal/api/middleware"
	"github.com/royal-barbershop/booking-service/internal/config"
	appointmentRepo "github.com/royal-barbershop/booking-service/internal/infra/storage/appointment"
	notifierClient "github.com/royal-barbershop/booking-service/internal/integrations/notifier"
	appointmentsService "github.com/royal-barbershop/booking-service/internal/service/appointments"
	createAppointmentUC "github.com/royal-barbershop/booking-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/royal-barbershop/booking-service/internal/usecase/get_available_slots"
	"github.com/royal-barbershop/booking-service/pkg/logger"
	"github.com/royal-barbershop/booking-service/pkg/metrics"
	"github.com/royal-barbershop/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Собираем доменную политику бронирования из конфигурации
	catalog, err := cfg.Booking.Catalog()
	if err != nil {
		log.Fatal("Failed to build service catalog: %v", err)
	}
	schedule, err := cfg.Booking.WeekSchedule()
	if err != nil {
		log.Fatal("Failed to build week schedule: %v", err)
	}
	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load shop timezone: %v", err)
	}
	log.Info("Booking policy loaded (services=%d, timezone=%s, slot_step=%dm)",
		len(catalog.List()), location.String(), cfg.Booking.SlotStepMinutes)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем репозиторий и transaction manager
	repo := appointmentRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем клиент уведомлений (если включен)
	var notifier createAppointmentUC.Notifier
	if cfg.Notifier.Enabled {
		client, err := notifierClient.NewClient(notifierClient.Config{
			SMTPHost:    cfg.Notifier.SMTPHost,
			SMTPPort:    cfg.Notifier.SMTPPort,
			From:        cfg.Notifier.From,
			OwnerEmail:  cfg.Notifier.OwnerEmail,
			ShopName:    cfg.Notifier.ShopName,
			ShopAddress: cfg.Notifier.ShopAddress,
		}, catalog, metricsOrNil(metricsCollector), log)
		if err != nil {
			log.Fatal("Failed to initialize notifier: %v", err)
		}
		notifier = client
		log.Info("Owner notifications enabled (smtp=%s:%d, owner=%s)",
			cfg.Notifier.SMTPHost, cfg.Notifier.SMTPPort, cfg.Notifier.OwnerEmail)
	} else {
		log.Info("Owner notifications disabled")
	}

	// Провайдер времени в часовом поясе заведения
	timeProvider := &getAvailableSlotsUC.ShopTimeProvider{Location: location}

	policy := getAvailableSlotsUC.Policy{
		SlotStepMinutes:  cfg.Booking.SlotStepMinutes,
		MinNoticeMinutes: cfg.Booking.MinNoticeMinutes,
	}

	// Инициализируем сервис чтения
	appointmentsSvc := appointmentsService.NewService(repo, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		repo,
		txMgr,
		notifier,
		catalog,
		schedule,
		createAppointmentUC.Policy{
			SlotStepMinutes:  cfg.Booking.SlotStepMinutes,
			MinNoticeMinutes: cfg.Booking.MinNoticeMinutes,
		},
		timeProvider,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		repo,
		catalog,
		schedule,
		policy,
		timeProvider,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, createMetricsOrNil(metricsCollector), log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getDayAppointments := getDayAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getBookedDates := getBookedDatesHandler.NewHandler(appointmentsSvc, log)
	getServices := getServicesHandler.NewHandler(catalog, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix. Все роуты публичные: запись делается без аккаунта.
	api := r.PathPrefix("/api/v1").Subrouter()

	// Каталог услуг
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/appointments/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Даты с хотя бы одной записью в диапазоне
	api.HandleFunc("/appointments/dates", getBookedDates.Handle).Methods(http.MethodGet)

	// Занятые интервалы дня
	api.HandleFunc("/appointments", getDayAppointments.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

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

// metricsOrNil возвращает nil интерфейс, когда метрики выключены,
// чтобы у потребителей работала проверка на nil
func metricsOrNil(m *metrics.Metrics) notifierClient.Metrics {
	if m == nil {
		return nil
	}
	return m
}

func createMetricsOrNil(m *metrics.Metrics) createAppointmentHandler.Metrics {
	if m == nil {
		return nil
	}
	return m
}
