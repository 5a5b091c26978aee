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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/KKKircheff/GTP-BookingService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/KKKircheff/GTP-BookingService/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/KKKircheff/GTP-BookingService/internal/api/handlers/create_booking"
	exportBookingsHandler "github.com/KKKircheff/GTP-BookingService/internal/api/handlers/export_bookings"
	findBookingHandler "github.com/KKKircheff/GTP-BookingService/internal/api/handlers/find_booking"
	getAvailableSlotsHandler "github.com/KKKircheff/GTP-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/KKKircheff/GTP-BookingService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/KKKircheff/GTP-BookingService/internal/api/handlers/get_calendar"
	listBookingsHandler "github.com/KKKircheff/GTP-BookingService/internal/api/handlers/list_bookings"
	"github.com/KKKircheff/GTP-BookingService/internal/api/middleware"
	"github.com/KKKircheff/GTP-BookingService/internal/config"
	occupancyCache "github.com/KKKircheff/GTP-BookingService/internal/infra/cache/occupancy"
	bookingRepo "github.com/KKKircheff/GTP-BookingService/internal/infra/storage/booking"
	bookingsService "github.com/KKKircheff/GTP-BookingService/internal/service/bookings"
	createBookingUC "github.com/KKKircheff/GTP-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/KKKircheff/GTP-BookingService/internal/usecase/get_available_slots"
	getCalendarUC "github.com/KKKircheff/GTP-BookingService/internal/usecase/get_calendar"
	"github.com/KKKircheff/GTP-BookingService/pkg/dbmetrics"
	"github.com/KKKircheff/GTP-BookingService/pkg/logger"
	"github.com/KKKircheff/GTP-BookingService/pkg/metrics"
	"github.com/KKKircheff/GTP-BookingService/pkg/simpletxmanager"
	"github.com/KKKircheff/GTP-BookingService/pkg/txmanager"
)

func main() {
	// Переменные окружения из .env (если файл есть)
	_ = godotenv.Load()

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

	log.Info("Starting GTP-BookingService...")
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

	// Кеш занятости по месяцам (Redis или no-op заглушка)
	type OccupancyCache interface {
		Get(ctx context.Context, month time.Time) (map[string]int, error)
		Set(ctx context.Context, month time.Time, counts map[string]int) error
		InvalidateDate(ctx context.Context, date time.Time) error
	}
	var occCache OccupancyCache

	if cfg.Redis.Enabled {
		redisClient := occupancyCache.NewClient(
			cfg.Redis.Address,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.PoolSize,
		)
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		occCache = occupancyCache.NewCache(redisClient, cfg.Redis.TTL())
		log.Info("Occupancy cache enabled (redis=%s, ttl=%s)", cfg.Redis.Address, cfg.Redis.TTL())
	} else {
		occCache = occupancyCache.NewNoop()
		log.Info("Occupancy cache disabled, using no-op cache")
	}

	// Доменные настройки расписания и цен
	schedule := cfg.ToDomainSchedule()
	priceTable := cfg.ToDomainPriceTable()
	log.Info("Schedule configured: %s-%s, slot=%dmin, horizon=%d weeks",
		schedule.BusinessStart, schedule.BusinessEnd,
		schedule.SlotDurationMinutes, schedule.MaxAdvanceWeeks)

	// Инициализируем репозиторий (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис бронирований (админские операции и экспорт)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		occCache,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		occCache,
		schedule,
		priceTable,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		schedule,
		log,
	)

	getCalendarUseCase := getCalendarUC.NewUseCase(
		bookingRepository,
		occCache,
		schedule,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	findBooking := findBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Календарь на месяц
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Поиск бронирования по номеру подтверждения
	api.HandleFunc("/bookings/confirmation/{number}", findBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Server.AdminToken))

	// Список бронирований с фильтрами
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Выгрузка бронирований в Excel
	admin.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Завершение бронирования (осмотр пройден)
	admin.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)

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
