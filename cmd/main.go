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
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	cancelBookingHandler "github.com/m04kA/SMC-StylistBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-StylistBooking/internal/api/handlers/create_booking"
	createExceptionHandler "github.com/m04kA/SMC-StylistBooking/internal/api/handlers/create_exception"
	deleteExceptionHandler "github.com/m04kA/SMC-StylistBooking/internal/api/handlers/delete_exception"
	getAvailabilityHandler "github.com/m04kA/SMC-StylistBooking/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/SMC-StylistBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-StylistBooking/internal/api/handlers/get_booking"
	getStylistBookingsHandler "github.com/m04kA/SMC-StylistBooking/internal/api/handlers/get_stylist_bookings"
	getUserBookingsHandler "github.com/m04kA/SMC-StylistBooking/internal/api/handlers/get_user_bookings"
	listExceptionsHandler "github.com/m04kA/SMC-StylistBooking/internal/api/handlers/list_exceptions"
	rescheduleBookingHandler "github.com/m04kA/SMC-StylistBooking/internal/api/handlers/reschedule_booking"
	sendReminderHandler "github.com/m04kA/SMC-StylistBooking/internal/api/handlers/send_reminder"
	setAvailabilityHandler "github.com/m04kA/SMC-StylistBooking/internal/api/handlers/set_availability"
	updateBookingHandler "github.com/m04kA/SMC-StylistBooking/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-StylistBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StylistBooking/internal/config"
	"github.com/m04kA/SMC-StylistBooking/internal/domain"
	"github.com/m04kA/SMC-StylistBooking/internal/infra/lock"
	bookingRepo "github.com/m04kA/SMC-StylistBooking/internal/infra/storage/booking"
	exceptionRepo "github.com/m04kA/SMC-StylistBooking/internal/infra/storage/exception"
	identityRepo "github.com/m04kA/SMC-StylistBooking/internal/infra/storage/identity"
	scheduleRepo "github.com/m04kA/SMC-StylistBooking/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-StylistBooking/internal/integrations/sms"
	availabilityService "github.com/m04kA/SMC-StylistBooking/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-StylistBooking/internal/service/bookings"
	"github.com/m04kA/SMC-StylistBooking/internal/service/notify"
	createBookingUC "github.com/m04kA/SMC-StylistBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-StylistBooking/internal/usecase/get_available_slots"
	rescheduleBookingUC "github.com/m04kA/SMC-StylistBooking/internal/usecase/reschedule_booking"
	sendRemindersUC "github.com/m04kA/SMC-StylistBooking/internal/usecase/send_reminders"
	"github.com/m04kA/SMC-StylistBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StylistBooking/pkg/logger"
	"github.com/m04kA/SMC-StylistBooking/pkg/metrics"
	"github.com/m04kA/SMC-StylistBooking/pkg/txmanager"
)

const notificationWorkers = 2

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

	log.Info("Starting SMC-StylistBooking...")

	// Все даты и время записей читаются в одной зоне
	loc, err := cfg.Server.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Server.Timezone, err)
	}
	time.Local = loc
	log.Info("Booking timezone: %s", loc)

	// Инициализируем метрики (если включены). nil метрики безопасны для всех потребителей
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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	exceptionRepository := exceptionRepo.NewRepository(wrappedDB)
	identityRepository := identityRepo.NewRepository(wrappedDB)

	// Блокировки бронирований
	var locker lock.Locker
	switch cfg.Locker.Backend {
	case config.LockerRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			cancelPing()
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		cancelPing()

		locker = lock.NewRedis(
			redisClient,
			time.Duration(cfg.Locker.TTLSeconds)*time.Second,
			time.Duration(cfg.Locker.RetryMillis)*time.Millisecond,
			log,
		)
		log.Info("Booking locks: redis (addr=%s)", cfg.Redis.Addr)
	default:
		locker = lock.NewMemory()
		log.Info("Booking locks: in-process")
	}

	// Уведомления
	var sender notify.Sender
	switch cfg.Notifications.Sender {
	case config.SenderHTTP:
		sender = sms.NewClient(
			cfg.Notifications.URL,
			cfg.Notifications.APIKey,
			time.Duration(cfg.Notifications.Timeout)*time.Second,
			log,
		)
		log.Info("SMS gateway client initialized (url=%s, timeout=%ds)",
			cfg.Notifications.URL, cfg.Notifications.Timeout)
	default:
		sender = sms.NewLogSender(log)
		log.Info("SMS notifications are logged only")
	}

	dispatcher := notify.NewDispatcher(
		sender,
		identityRepository,
		metricsCollector,
		log,
		cfg.Notifications.QueueSize,
		notificationWorkers,
		cfg.Notifications.SalonAddress,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		identityRepository,
		dispatcher,
		txMgr,
		log,
	)
	availabilitySvc := availabilityService.NewService(
		scheduleRepository,
		exceptionRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		exceptionRepository,
		identityRepository,
		locker,
		txMgr,
		dispatcher,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		exceptionRepository,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		exceptionRepository,
		locker,
		txMgr,
		dispatcher,
		log,
	)
	sendRemindersUseCase := sendRemindersUC.NewUseCase(
		bookingRepository,
		dispatcher,
		rate.NewLimiter(rate.Limit(cfg.Reminders.RatePerSecond), cfg.Reminders.Burst),
		metricsCollector,
		log,
	)

	// Фоновая рассылка напоминаний
	remindersCtx, stopReminders := context.WithCancel(context.Background())
	remindersDone := make(chan struct{})
	if cfg.Reminders.Enabled {
		interval := time.Duration(cfg.Reminders.IntervalSeconds) * time.Second
		go func() {
			defer close(remindersDone)
			sendRemindersUseCase.Run(remindersCtx, interval)
		}()
		log.Info("Reminder sweep started (interval=%s)", interval)
	} else {
		close(remindersDone)
	}

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getStylistBookings := getStylistBookingsHandler.NewHandler(bookingSvc, log)
	sendReminder := sendReminderHandler.NewHandler(sendRemindersUseCase, log)
	setAvailability := setAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	createException := createExceptionHandler.NewHandler(availabilitySvc, log)
	listExceptions := listExceptionsHandler.NewHandler(availabilitySvc, log)
	deleteException := deleteExceptionHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := wrappedDB.PingContext(ctx); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	public := api.PathPrefix("/public").Subrouter()
	public.HandleFunc("/stylists/{stylistId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	public.HandleFunc("/stylists/{stylistId}/book", createBooking.HandlePublic).Methods(http.MethodPost)
	public.HandleFunc("/bookings/{bookingId}", getBooking.HandlePublic).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Bearer JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPost)

	// --- Кабинет стилиста ---
	stylists := protected.PathPrefix("/stylists").Subrouter()
	stylists.Use(middleware.RequireRole(domain.RoleProvider, domain.RoleAdmin))

	stylists.HandleFunc("/availability", setAvailability.Handle).Methods(http.MethodPost)
	stylists.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	stylists.HandleFunc("/availability/slots", getAvailableSlots.HandleOwn).Methods(http.MethodGet)
	stylists.HandleFunc("/exceptions", createException.Handle).Methods(http.MethodPost)
	stylists.HandleFunc("/exceptions", listExceptions.Handle).Methods(http.MethodGet)
	stylists.HandleFunc("/exceptions/{exceptionId}", deleteException.Handle).Methods(http.MethodDelete)
	stylists.HandleFunc("/bookings", getStylistBookings.Handle).Methods(http.MethodGet)
	stylists.HandleFunc("/bookings/{bookingId}/reminder", sendReminder.Handle).Methods(http.MethodPost)

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

	// Останавливаем напоминания и дожидаемся отправки поставленных уведомлений
	stopReminders()
	<-remindersDone
	dispatcher.Close()

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
