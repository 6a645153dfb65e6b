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

	cancelBookingHandler "github.com/m04kA/MYB-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/MYB-BookingService/internal/api/handlers/create_booking"
	createServiceHandler "github.com/m04kA/MYB-BookingService/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/m04kA/MYB-BookingService/internal/api/handlers/delete_service"
	getAllBookingsHandler "github.com/m04kA/MYB-BookingService/internal/api/handlers/get_all_bookings"
	getAvailableSlotsHandler "github.com/m04kA/MYB-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/MYB-BookingService/internal/api/handlers/get_booking"
	getEarliestSlotHandler "github.com/m04kA/MYB-BookingService/internal/api/handlers/get_earliest_slot"
	getServiceHandler "github.com/m04kA/MYB-BookingService/internal/api/handlers/get_service"
	getShopHoursHandler "github.com/m04kA/MYB-BookingService/internal/api/handlers/get_shop_hours"
	getUserBookingsHandler "github.com/m04kA/MYB-BookingService/internal/api/handlers/get_user_bookings"
	getUserConsumptionsHandler "github.com/m04kA/MYB-BookingService/internal/api/handlers/get_user_consumptions"
	listServicesHandler "github.com/m04kA/MYB-BookingService/internal/api/handlers/list_services"
	sendReminderHandler "github.com/m04kA/MYB-BookingService/internal/api/handlers/send_reminder"
	updateBookingStatusHandler "github.com/m04kA/MYB-BookingService/internal/api/handlers/update_booking_status"
	updateServiceHandler "github.com/m04kA/MYB-BookingService/internal/api/handlers/update_service"
	updateShopHoursHandler "github.com/m04kA/MYB-BookingService/internal/api/handlers/update_shop_hours"
	"github.com/m04kA/MYB-BookingService/internal/api/middleware"
	"github.com/m04kA/MYB-BookingService/internal/config"
	bookingRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/booking"
	consumptionRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/consumption"
	customerRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/customer"
	reminderRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/reminder"
	serviceRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/service"
	shopconfigRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/shopconfig"
	bookingsService "github.com/m04kA/MYB-BookingService/internal/service/bookings"
	consumptionsService "github.com/m04kA/MYB-BookingService/internal/service/consumptions"
	remindersService "github.com/m04kA/MYB-BookingService/internal/service/reminders"
	servicesService "github.com/m04kA/MYB-BookingService/internal/service/services"
	shopconfigService "github.com/m04kA/MYB-BookingService/internal/service/shopconfig"
	completeBookingUC "github.com/m04kA/MYB-BookingService/internal/usecase/complete_booking"
	createBookingUC "github.com/m04kA/MYB-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/MYB-BookingService/internal/usecase/get_available_slots"
	getEarliestSlotUC "github.com/m04kA/MYB-BookingService/internal/usecase/get_earliest_slot"
	"github.com/m04kA/MYB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/MYB-BookingService/pkg/logger"
	"github.com/m04kA/MYB-BookingService/pkg/metrics"
	"github.com/m04kA/MYB-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/MYB-BookingService/pkg/txmanager"
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

	log.Info("Starting MYB-BookingService...")
	log.Info("Configuration loaded from config.toml")

	if cfg.Auth.AdminToken == "" {
		log.Warn("auth.admin_token is empty: all admin routes will be rejected")
	}

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
		bookingRepository     *bookingRepo.Repository
		shopconfigRepository  *shopconfigRepo.Repository
		serviceRepository     *serviceRepo.Repository
		customerRepository    *customerRepo.Repository
		consumptionRepository *consumptionRepo.Repository
		reminderRepository    *reminderRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		shopconfigRepository = shopconfigRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		consumptionRepository = consumptionRepo.NewRepository(wrappedDB)
		reminderRepository = reminderRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		shopconfigRepository = shopconfigRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		consumptionRepository = consumptionRepo.NewRepository(db)
		reminderRepository = reminderRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	shopconfigSvc := shopconfigService.NewService(shopconfigRepository, cfg.Booking.DefaultHours, log)
	servicesSvc := servicesService.NewService(serviceRepository, log)
	remindersSvc := remindersService.NewService(bookingRepository, reminderRepository, log)
	consumptionsSvc := consumptionsService.NewService(consumptionRepository, log)

	// Инициализируем use cases
	slotConfig := getAvailableSlotsUC.Config{
		DefaultDurationMinutes: cfg.Booking.DefaultDurationMinutes,
		SlotStepMinutes:        cfg.Booking.SlotStepMinutes,
	}

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		shopconfigSvc,
		serviceRepository,
		slotConfig,
		log,
	)

	getEarliestSlotUseCase := getEarliestSlotUC.NewUseCase(
		bookingRepository,
		shopconfigSvc,
		serviceRepository,
		getEarliestSlotUC.Config{
			DefaultDurationMinutes: cfg.Booking.DefaultDurationMinutes,
			SlotStepMinutes:        cfg.Booking.SlotStepMinutes,
		},
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		shopconfigSvc,
		serviceRepository,
		customerRepository,
		txMgr,
		createBookingUC.Config{DefaultDurationMinutes: cfg.Booking.DefaultDurationMinutes},
		log,
	)

	completeBookingUseCase := completeBookingUC.NewUseCase(
		bookingRepository,
		consumptionRepository,
		customerRepository,
		serviceRepository,
		txMgr,
		log,
	)

	bookingSvc := bookingsService.NewService(bookingRepository, completeBookingUseCase, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getEarliestSlot := getEarliestSlotHandler.NewHandler(getEarliestSlotUseCase, log)
	getShopHours := getShopHoursHandler.NewHandler(shopconfigSvc, log)
	listServices := listServicesHandler.NewHandler(servicesSvc, false, log)
	getService := getServiceHandler.NewHandler(servicesSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getUserConsumptions := getUserConsumptionsHandler.NewHandler(consumptionsSvc, log)

	getAllBookings := getAllBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	updateShopHours := updateShopHoursHandler.NewHandler(shopconfigSvc, log)
	listAllServices := listServicesHandler.NewHandler(servicesSvc, true, log)
	createService := createServiceHandler.NewHandler(servicesSvc, log)
	updateService := updateServiceHandler.NewHandler(servicesSvc, log)
	deleteService := deleteServiceHandler.NewHandler(servicesSvc, log)
	sendReminder := sendReminderHandler.NewHandler(remindersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

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

	// Свободные слоты на дату
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Ближайший свободный слот
	api.HandleFunc("/slots/earliest", getEarliestSlot.Handle).Methods(http.MethodGet)

	// Часы работы салона
	api.HandleFunc("/shop/hours", getShopHours.Handle).Methods(http.MethodGet)

	// Каталог активных услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Карточка услуги
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// История потребления пользователя
	protected.HandleFunc("/users/{userId}/consumptions", getUserConsumptions.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.AdminToken))

	// Все бронирования
	admin.HandleFunc("/bookings", getAllBookings.Handle).Methods(http.MethodGet)

	// Смена статуса бронирования (включая завершение)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Управление часами работы
	admin.HandleFunc("/shop/hours", updateShopHours.Handle).Methods(http.MethodPut)

	// Управление каталогом услуг
	admin.HandleFunc("/services", listAllServices.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// Напоминания о предстоящих визитах
	admin.HandleFunc("/reminders", sendReminder.Handle).Methods(http.MethodPost)

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
