package get_earliest_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/MYB-BookingService/internal/domain"
	serviceRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/service"
)

// Config параметры генерации слотов
type Config struct {
	DefaultDurationMinutes int
	SlotStepMinutes        int
}

// UseCase use case для получения ближайшего свободного слота
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

// Execute выполняет use case поиска ближайшего свободного слота.
// Для сегодняшней даты предпочитается первый слот, начинающийся не раньше
// текущего времени; если таких нет, возвращается первый свободный слот дня.
// Если свободных слотов нет вовсе, Found=false и StartTime пустая
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetEarliestSlot: date=%s, service=%v, duration=%v",
		req.Date.Format(domain.DateFormat), req.ServiceID, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetEarliestSlot: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetEarliestSlot: date=%s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 2. Определяем длительность слота
	duration, err := uc.resolveDuration(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Получаем часы работы салона
	hours, err := uc.hoursProvider.GetBusinessHours(ctx)
	if err != nil {
		uc.logger.Error("GetEarliestSlot: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	// 4. Считаем свободные слоты
	candidates := domain.GenerateSlots(hours, duration, uc.config.SlotStepMinutes)

	bookings, err := uc.bookingRepo.GetActiveByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetEarliestSlot: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	free := freeSlots(candidates, bookings)

	resp := &Response{
		Date:            req.Date,
		DurationMinutes: duration,
	}

	if len(free) == 0 {
		uc.logger.Info("GetEarliestSlot: no free slots for date=%s", req.Date.Format(domain.DateFormat))
		return resp, nil
	}

	// 5. Выбираем слот: для сегодняшней даты - первый начинающийся не раньше
	// текущего времени, иначе первый свободный
	chosen := free[0]
	if isSameDay(req.Date, now) {
		nowMinute := now.Hour()*60 + now.Minute()
		for _, slot := range free {
			if slot.StartMinute >= nowMinute {
				chosen = slot
				break
			}
		}
	}

	resp.StartTime = chosen.Time.String()
	resp.Found = true

	uc.logger.Info("GetEarliestSlot: earliest slot %s for date=%s, duration=%d",
		resp.StartTime, req.Date.Format(domain.DateFormat), duration)

	return resp, nil
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
				uc.logger.Warn("GetEarliestSlot: service id=%d not found", *req.ServiceID)
				return 0, ErrServiceNotFound
			}
			uc.logger.Error("GetEarliestSlot: failed to get service id=%d: %v", *req.ServiceID, err)
			return 0, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if svc.DurationMinutes > 0 {
			return svc.DurationMinutes, nil
		}
	}

	return uc.config.DefaultDurationMinutes, nil
}

// freeSlots оставляет только слоты без пересечений с активными бронированиями
func freeSlots(candidates []domain.FreeSlot, bookings []*domain.Booking) []domain.FreeSlot {
	booked := make([]domain.BookedRange, 0, len(bookings))
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		r, err := booking.Range()
		if err != nil {
			continue
		}
		booked = append(booked, r)
	}

	free := make([]domain.FreeSlot, 0, len(candidates))
	for _, slot := range candidates {
		occupied := false
		for _, r := range booked {
			if r.Overlaps(slot.StartMinute, slot.EndMinute) {
				occupied = true
				break
			}
		}
		if !occupied {
			free = append(free, slot)
		}
	}

	return free
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if req.DurationMinutes != nil {
		if *req.DurationMinutes < domain.MinDurationMinutes || *req.DurationMinutes > domain.MaxDurationMinutes {
			return fmt.Errorf("%w: durationMinutes must be between %d and %d",
				ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
		}
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
