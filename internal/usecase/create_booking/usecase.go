package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MYB-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/booking"
	serviceRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/service"
)

// Config параметры бронирования
type Config struct {
	DefaultDurationMinutes int
}

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	hoursProvider HoursProvider
	catalog       ServiceCatalog
	customerRepo  CustomerRepository
	txManager     TransactionManager
	config        Config
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	hoursProvider HoursProvider,
	catalog ServiceCatalog,
	customerRepo CustomerRepository,
	txManager TransactionManager,
	config Config,
	logger Logger,
) *UseCase {
	if config.DefaultDurationMinutes <= 0 {
		config.DefaultDurationMinutes = domain.DefaultDurationMinutes
	}

	return &UseCase{
		bookingRepo:   bookingRepo,
		hoursProvider: hoursProvider,
		catalog:       catalog,
		customerRepo:  customerRepo,
		txManager:     txManager,
		config:        config,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка конфликта и вставка выполняются атомарно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, service=%v, date=%s, time=%s",
		req.UserID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем дату
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date=%s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Определяем длительность слота
	duration, err := uc.resolveDuration(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Проверяем, что слот помещается в часы работы
	hours, err := uc.hoursProvider.GetBusinessHours(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	startMinute, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	endMinute := startMinute + duration

	if !hours.Contains(startMinute, endMinute) {
		uc.logger.Warn("CreateBooking: slot %s+%dmin is outside business hours %s",
			req.StartTime, duration, hours)
		return nil, ErrOutsideBusinessHours
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Выполняем проверку конфликта и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем активные бронирования на дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetActiveByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Проверяем пересечение с существующими бронированиями
		if hasConflict(startMinute, endMinute, bookings) {
			uc.logger.Warn("CreateBooking: slot %s+%dmin on %s conflicts with an existing booking",
				req.StartTime, duration, req.Date.Format(domain.DateFormat))
			return ErrSlotConflict
		}

		// 5.3. Создаем бронирование
		booking := &domain.Booking{
			UserID:          req.UserID,
			ServiceID:       req.ServiceID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			Status:          domain.StatusPending,
			ContactPhone:    req.ContactPhone,
			Remark:          req.Remark,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Страховка на случай конкурентной вставки того же слота
			if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
				uc.logger.Warn("CreateBooking: duplicate slot %s on %s",
					req.StartTime, req.Date.Format(domain.DateFormat))
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 6. Обновляем телефон клиента (best-effort, ошибка не отменяет бронирование)
	if req.ContactPhone != nil && *req.ContactPhone != "" {
		if err := uc.customerRepo.UpdatePhone(ctx, req.UserID, *req.ContactPhone); err != nil {
			uc.logger.Warn("CreateBooking: failed to update phone for user=%d: %v", req.UserID, err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		ServiceID:       result.ServiceID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ContactPhone:    result.ContactPhone,
		Remark:          result.Remark,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// resolveDuration определяет длительность слота.
// Приоритет: явная длительность из запроса > длительность услуги > дефолт
func (uc *UseCase) resolveDuration(ctx context.Context, req *Request) (int, error) {
	if req.DurationMinutes != nil {
		return *req.DurationMinutes, nil
	}

	if req.ServiceID != nil {
		svc, err := uc.catalog.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateBooking: service id=%d not found", *req.ServiceID)
				return 0, ErrServiceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get service id=%d: %v", *req.ServiceID, err)
			return 0, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if svc.DurationMinutes > 0 {
			return svc.DurationMinutes, nil
		}
	}

	return uc.config.DefaultDurationMinutes, nil
}
