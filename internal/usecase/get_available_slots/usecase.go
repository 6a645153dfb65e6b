package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MYB-BookingService/internal/domain"
	serviceRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/service"
)

// Config параметры генерации слотов
type Config struct {
	DefaultDurationMinutes int
	SlotStepMinutes        int
}

// UseCase use case для получения свободных слотов
type UseCase struct {
	bookingRepo   BookingRepository
	hoursProvider HoursProvider
	catalog       ServiceCatalog
	config        Config
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	hoursProvider HoursProvider,
	catalog ServiceCatalog,
	config Config,
	logger Logger,
) *UseCase {
	if config.DefaultDurationMinutes <= 0 {
		config.DefaultDurationMinutes = domain.DefaultDurationMinutes
	}
	if config.SlotStepMinutes <= 0 {
		config.SlotStepMinutes = domain.DefaultStepMinutes
	}

	return &UseCase{
		bookingRepo:   bookingRepo,
		hoursProvider: hoursProvider,
		catalog:       catalog,
		config:        config,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, service=%v, duration=%v",
		req.Date.Format(domain.DateFormat), req.ServiceID, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Определяем длительность слота
	duration, err := uc.resolveDuration(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Получаем часы работы салона
	hours, err := uc.hoursProvider.GetBusinessHours(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	// 5. Генерируем кандидатов и убираем пересечения с активными бронированиями
	step := uc.config.SlotStepMinutes
	if req.StepMinutes != nil {
		step = *req.StepMinutes
	}
	candidates := domain.GenerateSlots(hours, duration, step)

	bookings, err := uc.bookingRepo.GetActiveByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	freeSlots := filterFreeSlots(candidates, collectBookedRanges(bookings))

	slots := make([]Slot, len(freeSlots))
	for i, slot := range freeSlots {
		endTime, _ := slot.Time.AddMinutes(duration)
		slots[i] = Slot{
			StartTime: slot.Time,
			EndTime:   endTime,
		}
	}

	uc.logger.Info("GetAvailableSlots: %d free of %d candidates for date=%s, duration=%d",
		len(slots), len(candidates), req.Date.Format(domain.DateFormat), duration)

	return &Response{
		Date:            req.Date,
		Hours:           hours.String(),
		DurationMinutes: duration,
		Slots:           slots,
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
				uc.logger.Warn("GetAvailableSlots: service id=%d not found", *req.ServiceID)
				return 0, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", *req.ServiceID, err)
			return 0, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if svc.DurationMinutes > 0 {
			return svc.DurationMinutes, nil
		}
	}

	return uc.config.DefaultDurationMinutes, nil
}
