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

	addServiceHandler "github.com/smartappt/booking-service/internal/api/handlers/add_service"
	cancelBookingHandler "github.com/smartappt/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/smartappt/booking-service/internal/api/handlers/create_booking"
	createBusinessHandler "github.com/smartappt/booking-service/internal/api/handlers/create_business"
	deactivateServiceHandler "github.com/smartappt/booking-service/internal/api/handlers/deactivate_service"
	decideBookingHandler "github.com/smartappt/booking-service/internal/api/handlers/decide_booking"
	deleteBookingHandler "github.com/smartappt/booking-service/internal/api/handlers/delete_booking"
	deleteBusinessHandler "github.com/smartappt/booking-service/internal/api/handlers/delete_business"
	deleteServiceHandler "github.com/smartappt/booking-service/internal/api/handlers/delete_service"
	getBookingHandler "github.com/smartappt/booking-service/internal/api/handlers/get_booking"
	getBusinessHandler "github.com/smartappt/booking-service/internal/api/handlers/get_business"
	getBusinessBookingsHandler "github.com/smartappt/booking-service/internal/api/handlers/get_business_bookings"
	getDailyBookingsHandler "github.com/smartappt/booking-service/internal/api/handlers/get_daily_bookings"
	getDailySlotsHandler "github.com/smartappt/booking-service/internal/api/handlers/get_daily_slots"
	getMonthlyCalendarHandler "github.com/smartappt/booking-service/internal/api/handlers/get_monthly_calendar"
	getMyBookingsHandler "github.com/smartappt/booking-service/internal/api/handlers/get_my_bookings"
	getServiceHandler "github.com/smartappt/booking-service/internal/api/handlers/get_service"
	getServicesHandler "github.com/smartappt/booking-service/internal/api/handlers/get_services"
	manageHolidaysHandler "github.com/smartappt/booking-service/internal/api/handlers/manage_holidays"
	registerCustomerHandler "github.com/smartappt/booking-service/internal/api/handlers/register_customer"
	setOpeningHoursHandler "github.com/smartappt/booking-service/internal/api/handlers/set_opening_hours"
	updateBookingHandler "github.com/smartappt/booking-service/internal/api/handlers/update_booking"
	updateBusinessHandler "github.com/smartappt/booking-service/internal/api/handlers/update_business"
	"github.com/smartappt/booking-service/internal/api/middleware"
	"github.com/smartappt/booking-service/internal/config"
	bookingRepo "github.com/smartappt/booking-service/internal/infra/storage/booking"
	businessRepo "github.com/smartappt/booking-service/internal/infra/storage/business"
	catalogRepo "github.com/smartappt/booking-service/internal/infra/storage/catalog"
	customerRepo "github.com/smartappt/booking-service/internal/infra/storage/customer"
	scheduleRepo "github.com/smartappt/booking-service/internal/infra/storage/schedule"
	bookingsService "github.com/smartappt/booking-service/internal/service/bookings"
	businessService "github.com/smartappt/booking-service/internal/service/business"
	catalogService "github.com/smartappt/booking-service/internal/service/catalog"
	customersService "github.com/smartappt/booking-service/internal/service/customers"
	createBookingUC "github.com/smartappt/booking-service/internal/usecase/create_booking"
	dailySlotsUC "github.com/smartappt/booking-service/internal/usecase/daily_slots"
	monthlyCalendarUC "github.com/smartappt/booking-service/internal/usecase/monthly_calendar"
	updateBookingUC "github.com/smartappt/booking-service/internal/usecase/update_booking"
	"github.com/smartappt/booking-service/pkg/cache"
	"github.com/smartappt/booking-service/pkg/dbmetrics"
	"github.com/smartappt/booking-service/pkg/logger"
	"github.com/smartappt/booking-service/pkg/metrics"
	"github.com/smartappt/booking-service/pkg/simpletxmanager"
	"github.com/smartappt/booking-service/pkg/txmanager"
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
		bookingRepository  *bookingRepo.Repository
		businessRepository *businessRepo.Repository
		catalogRepository  *catalogRepo.Repository
		customerRepository *customerRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		businessRepository = businessRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		businessRepository = businessRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем кеш календаря (если включен)
	var calendarCache monthlyCalendarUC.CalendarCache
	if cfg.Cache.Enabled {
		redisCache, err := cache.New(context.Background(), cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisCache.Close()
		calendarCache = redisCache
		log.Info("Calendar cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTL)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		customerRepository,
		log,
	)
	businessSvc := businessService.NewService(
		businessRepository,
		scheduleRepository,
		log,
	)
	catalogSvc := catalogService.NewService(
		catalogRepository,
		businessRepository,
		log,
	)
	customersSvc := customersService.NewService(
		customerRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		businessRepository,
		catalogRepository,
		customerRepository,
		scheduleRepository,
		txMgr,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		scheduleRepository,
		txMgr,
		log,
	)
	monthlyCalendarUseCase := monthlyCalendarUC.NewUseCase(
		bookingRepository,
		businessRepository,
		catalogRepository,
		scheduleRepository,
		calendarCache,
		time.Duration(cfg.Cache.TTL)*time.Second,
		log,
	)
	dailySlotsUseCase := dailySlotsUC.NewUseCase(
		bookingRepository,
		businessRepository,
		catalogRepository,
		scheduleRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingSvc, log)
	decideBooking := decideBookingHandler.NewHandler(bookingSvc, log)
	getBusinessBookings := getBusinessBookingsHandler.NewHandler(bookingSvc, log)
	getDailyBookings := getDailyBookingsHandler.NewHandler(bookingSvc, log)

	getMonthlyCalendar := getMonthlyCalendarHandler.NewHandler(monthlyCalendarUseCase, log)
	getDailySlots := getDailySlotsHandler.NewHandler(dailySlotsUseCase, log)

	createBusiness := createBusinessHandler.NewHandler(businessSvc, log)
	getBusiness := getBusinessHandler.NewHandler(businessSvc, log)
	updateBusiness := updateBusinessHandler.NewHandler(businessSvc, log)
	deleteBusiness := deleteBusinessHandler.NewHandler(businessSvc, log)
	setOpeningHours := setOpeningHoursHandler.NewHandler(businessSvc, log)
	manageHolidays := manageHolidaysHandler.NewHandler(businessSvc, log)

	addService := addServiceHandler.NewHandler(catalogSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	deactivateService := deactivateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)

	registerCustomer := registerCustomerHandler.NewHandler(customersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Request-ID middleware для всех запросов
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

	// Регистрация клиента
	api.HandleFunc("/customers", registerCustomer.HandleRegister).Methods(http.MethodPost)

	// Профиль бизнеса с недельным расписанием
	api.HandleFunc("/businesses/{businessId}", getBusiness.Handle).Methods(http.MethodGet)

	// Каталог услуг бизнеса
	api.HandleFunc("/businesses/{businessId}/services", getServices.Handle).Methods(http.MethodGet)

	// Карточка услуги
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)

	// Календарь доступности услуги на месяц
	api.HandleFunc("/businesses/{businessId}/services/{serviceId}/calendar", getMonthlyCalendar.Handle).Methods(http.MethodGet)

	// Свободные слоты услуги на день
	api.HandleFunc("/businesses/{businessId}/services/{serviceId}/slots", getDailySlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Клиент ---
	// Собственный профиль
	protected.HandleFunc("/me", registerCustomer.HandleGetMe).Methods(http.MethodGet)

	// История бронирований клиента
	protected.HandleFunc("/me/bookings", getMyBookings.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Перенос бронирования
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования клиентом
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Решение персонала по заявке
	protected.HandleFunc("/bookings/{bookingId}/decision", decideBooking.Handle).Methods(http.MethodPatch)

	// Удаление бронирования из истории
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Управление бизнесом ---
	// Регистрация бизнеса
	protected.HandleFunc("/businesses", createBusiness.Handle).Methods(http.MethodPost)

	// Обновление профиля бизнеса
	protected.HandleFunc("/businesses/{businessId}", updateBusiness.Handle).Methods(http.MethodPut)

	// Удаление бизнеса
	protected.HandleFunc("/businesses/{businessId}", deleteBusiness.Handle).Methods(http.MethodDelete)

	// Рабочие часы
	protected.HandleFunc("/businesses/{businessId}/schedule", setOpeningHours.HandleSet).Methods(http.MethodPut)
	protected.HandleFunc("/businesses/{businessId}/schedule/{dayOfWeek}", setOpeningHours.HandleDelete).Methods(http.MethodDelete)

	// Праздничные дни
	protected.HandleFunc("/businesses/{businessId}/holidays", manageHolidays.HandleAdd).Methods(http.MethodPost)
	protected.HandleFunc("/businesses/{businessId}/holidays", manageHolidays.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/holidays/{date}", manageHolidays.HandleDelete).Methods(http.MethodDelete)

	// Каталог услуг
	protected.HandleFunc("/businesses/{businessId}/services", addService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}/deactivate", deactivateService.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Списки бронирований бизнеса ---
	protected.HandleFunc("/businesses/{businessId}/bookings", getBusinessBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/bookings/daily", getDailyBookings.Handle).Methods(http.MethodGet)

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
