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
	"github.com/rs/cors"

	adminReportsHandler "github.com/parkease/parkease-backend/internal/api/handlers/admin_reports"
	authHandler "github.com/parkease/parkease-backend/internal/api/handlers/auth"
	cancelBookingHandler "github.com/parkease/parkease-backend/internal/api/handlers/cancel_booking"
	confirmPaymentHandler "github.com/parkease/parkease-backend/internal/api/handlers/confirm_payment"
	createBookingHandler "github.com/parkease/parkease-backend/internal/api/handlers/create_booking"
	createSlotHandler "github.com/parkease/parkease-backend/internal/api/handlers/create_slot"
	deleteSlotHandler "github.com/parkease/parkease-backend/internal/api/handlers/delete_slot"
	getAdminBookingsHandler "github.com/parkease/parkease-backend/internal/api/handlers/get_admin_bookings"
	getAvailableSlotsHandler "github.com/parkease/parkease-backend/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/parkease/parkease-backend/internal/api/handlers/get_booking"
	getMyBookingsHandler "github.com/parkease/parkease-backend/internal/api/handlers/get_my_bookings"
	getSlotsHandler "github.com/parkease/parkease-backend/internal/api/handlers/get_slots"
	getVehicleBookingsHandler "github.com/parkease/parkease-backend/internal/api/handlers/get_vehicle_bookings"
	releaseSlotHandler "github.com/parkease/parkease-backend/internal/api/handlers/release_slot"
	"github.com/parkease/parkease-backend/internal/api/middleware"
	"github.com/parkease/parkease-backend/internal/bootstrap"
	"github.com/parkease/parkease-backend/internal/config"
	bookingRepo "github.com/parkease/parkease-backend/internal/infra/storage/booking"
	slotRepo "github.com/parkease/parkease-backend/internal/infra/storage/slot"
	userRepo "github.com/parkease/parkease-backend/internal/infra/storage/user"
	authService "github.com/parkease/parkease-backend/internal/service/auth"
	bookingsService "github.com/parkease/parkease-backend/internal/service/bookings"
	reportsService "github.com/parkease/parkease-backend/internal/service/reports"
	slotsService "github.com/parkease/parkease-backend/internal/service/slots"
	cancelBookingUC "github.com/parkease/parkease-backend/internal/usecase/cancel_booking"
	confirmPaymentUC "github.com/parkease/parkease-backend/internal/usecase/confirm_payment"
	createBookingUC "github.com/parkease/parkease-backend/internal/usecase/create_booking"
	deleteSlotUC "github.com/parkease/parkease-backend/internal/usecase/delete_slot"
	releaseSlotUC "github.com/parkease/parkease-backend/internal/usecase/release_slot"
	"github.com/parkease/parkease-backend/pkg/dbmetrics"
	"github.com/parkease/parkease-backend/pkg/logger"
	"github.com/parkease/parkease-backend/pkg/metrics"
	"github.com/parkease/parkease-backend/pkg/simpletxmanager"
	"github.com/parkease/parkease-backend/pkg/txmanager"
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

	log.Info("Starting ParkEase backend...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		slotRepository    *slotRepo.Repository
		userRepository    *userRepo.Repository
	)

	// Интерфейс transaction manager, общий для usecases и отчетов
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Начальное наполнение базы
	seeder := bootstrap.NewSeeder(slotRepository, userRepository, log)
	if err := seeder.Run(context.Background(), &cfg.Bootstrap); err != nil {
		log.Fatal("Failed to bootstrap database: %v", err)
	}

	// Инициализируем сервисы
	tokenManager := authService.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL)*time.Hour)
	authSvc := authService.NewService(userRepository, tokenManager, log)
	bookingSvc := bookingsService.NewService(bookingRepository, slotRepository, log)
	slotSvc := slotsService.NewService(slotRepository, log)
	reportSvc := reportsService.NewService(bookingRepository, slotRepository, txMgr, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, slotRepository, txMgr, log)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(bookingRepository, slotRepository, txMgr, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(bookingRepository, slotRepository, txMgr, log)
	releaseSlotUseCase := releaseSlotUC.NewUseCase(bookingRepository, slotRepository, txMgr, log)
	deleteSlotUseCase := deleteSlotUC.NewUseCase(bookingRepository, slotRepository, txMgr, log)

	// Инициализируем handlers
	auth := authHandler.NewHandler(authSvc, log)
	getSlots := getSlotsHandler.NewHandler(slotSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(slotSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	confirmPayment := confirmPaymentHandler.NewHandler(confirmPaymentUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingSvc, log)
	getVehicleBookings := getVehicleBookingsHandler.NewHandler(bookingSvc, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingSvc, log)
	createSlot := createSlotHandler.NewHandler(slotSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(deleteSlotUseCase, log)
	releaseSlot := releaseSlotHandler.NewHandler(releaseSlotUseCase, log)
	adminReports := adminReportsHandler.NewHandler(reportSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация и вход
	r.HandleFunc("/auth/register", auth.HandleRegister).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", auth.HandleLogin).Methods(http.MethodPost)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Просмотр слотов доступен без токена
	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/available", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getVehicleBookings.Handle).
		Queries("vehicleNumber", "{vehicleNumber}").Methods(http.MethodGet)
	protected.HandleFunc("/bookings/my", getMyBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/confirm-payment", confirmPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// ============================================================
	// ADMIN ROUTES (требуют роль ADMIN)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly)

	admin.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/release", releaseSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/stats", adminReports.HandleStats).Methods(http.MethodGet)
	admin.HandleFunc("/users", adminReports.HandleUsers).Methods(http.MethodGet)
	admin.HandleFunc("/payments", adminReports.HandlePayments).Methods(http.MethodGet)
	admin.HandleFunc("/activity", adminReports.HandleActivity).Methods(http.MethodGet)

	// CORS для браузерного фронтенда
	corsWrapper := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodPatch, http.MethodPut},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsWrapper.Handler(r),
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
