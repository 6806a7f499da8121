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

	cancelBookingHandler "github.com/m04kA/SMC-SpaceService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/m04kA/SMC-SpaceService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-SpaceService/internal/api/handlers/create_booking"
	createSpaceHandler "github.com/m04kA/SMC-SpaceService/internal/api/handlers/create_space"
	deleteSpaceHandler "github.com/m04kA/SMC-SpaceService/internal/api/handlers/delete_space"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SpaceService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SpaceService/internal/api/handlers/get_booking"
	getProfileHandler "github.com/m04kA/SMC-SpaceService/internal/api/handlers/get_profile"
	getReportHandler "github.com/m04kA/SMC-SpaceService/internal/api/handlers/get_report"
	getSpaceHandler "github.com/m04kA/SMC-SpaceService/internal/api/handlers/get_space"
	getUserBookingsHandler "github.com/m04kA/SMC-SpaceService/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/m04kA/SMC-SpaceService/internal/api/handlers/list_bookings"
	listProfilesHandler "github.com/m04kA/SMC-SpaceService/internal/api/handlers/list_profiles"
	listSpacesHandler "github.com/m04kA/SMC-SpaceService/internal/api/handlers/list_spaces"
	updateBookingStatusHandler "github.com/m04kA/SMC-SpaceService/internal/api/handlers/update_booking_status"
	updateProfileRoleHandler "github.com/m04kA/SMC-SpaceService/internal/api/handlers/update_profile_role"
	updateSpaceHandler "github.com/m04kA/SMC-SpaceService/internal/api/handlers/update_space"
	uploadAvatarHandler "github.com/m04kA/SMC-SpaceService/internal/api/handlers/upload_avatar"
	uploadSpaceImageHandler "github.com/m04kA/SMC-SpaceService/internal/api/handlers/upload_space_image"
	"github.com/m04kA/SMC-SpaceService/internal/api/middleware"
	"github.com/m04kA/SMC-SpaceService/internal/config"
	"github.com/m04kA/SMC-SpaceService/internal/infra/filestorage"
	bookingRepo "github.com/m04kA/SMC-SpaceService/internal/infra/storage/booking"
	profileRepo "github.com/m04kA/SMC-SpaceService/internal/infra/storage/profile"
	spaceRepo "github.com/m04kA/SMC-SpaceService/internal/infra/storage/space"
	bookingsService "github.com/m04kA/SMC-SpaceService/internal/service/bookings"
	profilesService "github.com/m04kA/SMC-SpaceService/internal/service/profiles"
	reportsService "github.com/m04kA/SMC-SpaceService/internal/service/reports"
	spacesService "github.com/m04kA/SMC-SpaceService/internal/service/spaces"
	createBookingUC "github.com/m04kA/SMC-SpaceService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SpaceService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SpaceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SpaceService/pkg/logger"
	"github.com/m04kA/SMC-SpaceService/pkg/metrics"
	"github.com/m04kA/SMC-SpaceService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SpaceService/pkg/txmanager"
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

	log.Info("Starting SMC-SpaceService...")
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

	// Клиент объектного хранилища для изображений и аватаров
	fileStorage := filestorage.NewClient(cfg.Storage)
	log.Info("File storage initialized (endpoint=%s, bucket=%s)", cfg.Storage.Endpoint, cfg.Storage.Bucket)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		spaceRepository   *spaceRepo.Repository
		profileRepository *profileRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		spaceRepository = spaceRepo.NewRepository(wrappedDB)
		profileRepository = profileRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		spaceRepository = spaceRepo.NewRepository(db)
		profileRepository = profileRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	spaceSvc := spacesService.NewService(spaceRepository, fileStorage, log)
	profileSvc := profilesService.NewService(profileRepository, fileStorage, log)
	reportSvc := reportsService.NewService(bookingRepository, spaceRepository, profileRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		spaceRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		spaceRepository,
		log,
	)

	// Инициализируем handlers
	listSpaces := listSpacesHandler.NewHandler(spaceSvc, log)
	getSpace := getSpaceHandler.NewHandler(spaceSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	getProfile := getProfileHandler.NewHandler(profileSvc, log)
	uploadAvatar := uploadAvatarHandler.NewHandler(profileSvc, log)
	createSpace := createSpaceHandler.NewHandler(spaceSvc, log)
	updateSpace := updateSpaceHandler.NewHandler(spaceSvc, log)
	deleteSpace := deleteSpaceHandler.NewHandler(spaceSvc, log)
	uploadSpaceImage := uploadSpaceImageHandler.NewHandler(spaceSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	listProfiles := listProfilesHandler.NewHandler(profileSvc, log)
	updateProfileRole := updateProfileRoleHandler.NewHandler(profileSvc, log)
	getReport := getReportHandler.NewHandler(reportSvc, log)

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
	// PUBLIC ROUTES (аутентификация не обязательна, но учитывается:
	// администратор видит в каталоге и неактивные пространства)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth)

	// Каталог пространств
	public.HandleFunc("/spaces", listSpaces.Handle).Methods(http.MethodGet)
	public.HandleFunc("/spaces/{spaceId}", getSpace.Handle).Methods(http.MethodGet)

	// Сетка доступных слотов на дату
	public.HandleFunc("/spaces/{spaceId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Профили ---
	protected.HandleFunc("/profiles/{profileId}", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/profiles/{profileId}/avatar", uploadAvatar.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role=admin)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	// --- Управление пространствами ---
	admin.HandleFunc("/spaces", createSpace.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/spaces/{spaceId}", updateSpace.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/spaces/{spaceId}", deleteSpace.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/spaces/{spaceId}/image", uploadSpaceImage.Handle).Methods(http.MethodPost)

	// --- Управление бронированиями ---
	admin.HandleFunc("/admin/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Управление пользователями ---
	admin.HandleFunc("/admin/profiles", listProfiles.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/admin/profiles/{profileId}/role", updateProfileRole.Handle).Methods(http.MethodPatch)

	// --- Отчеты ---
	admin.HandleFunc("/admin/reports", getReport.Handle).Methods(http.MethodGet)

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
