package complete_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MYB-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/customer"
)

// fallbackServiceName используется, когда услуга бронирования не найдена
// в каталоге - завершение из-за этого не блокируется
const fallbackServiceName = "service"

// UseCase use case завершения бронирования.
// Помимо смены статуса выполняет побочные эффекты: списывает визит
// с абонемента клиента и пишет запись в журнал потребления.
// Повторный вызов для уже завершенного бронирования - no-op
type UseCase struct {
	bookingRepo     BookingRepository
	consumptionRepo ConsumptionRepository
	customerRepo    CustomerRepository
	catalog         ServiceCatalog
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	consumptionRepo ConsumptionRepository,
	customerRepo CustomerRepository,
	catalog ServiceCatalog,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		consumptionRepo: consumptionRepo,
		customerRepo:    customerRepo,
		catalog:         catalog,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute завершает бронирование.
// Все записи выполняются в одной транзакции: статус, списание абонемента
// и запись о потреблении либо применяются вместе, либо не применяются вовсе
func (uc *UseCase) Execute(ctx context.Context, bookingID int64) error {
	uc.logger.Info("CompleteBooking: completing booking id=%d", bookingID)

	return uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CompleteBooking: booking id=%d not found", bookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CompleteBooking: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Уже завершенное бронирование - идемпотентный успех
		if booking.Status == domain.StatusCompleted {
			uc.logger.Info("CompleteBooking: booking id=%d is already completed, skipping", bookingID)
			return nil
		}

		if booking.Status == domain.StatusCancelled {
			uc.logger.Warn("CompleteBooking: booking id=%d is cancelled", bookingID)
			return ErrBookingCancelled
		}

		// 3. Запись о потреблении уже есть - значит побочные эффекты применены,
		// осталось только довести статус
		exists, err := uc.consumptionRepo.ExistsByBookingID(txCtx, bookingID)
		if err != nil {
			uc.logger.Error("CompleteBooking: failed to check consumption record for booking id=%d: %v",
				bookingID, err)
			return fmt.Errorf("%w: failed to check consumption record: %v", ErrInternal, err)
		}

		if exists {
			uc.logger.Info("CompleteBooking: consumption record for booking id=%d already exists", bookingID)
			return uc.markCompleted(txCtx, bookingID)
		}

		// 4. Данные услуги - best-effort: отсутствие услуги в каталоге
		// не блокирует завершение
		serviceName, price := uc.lookupService(txCtx, booking)

		// 5. Списываем визит с абонемента; при пустом абонементе оплата наличными
		record := &domain.ConsumptionRecord{
			UserID:      booking.UserID,
			ServiceID:   booking.ServiceID,
			ServiceName: serviceName,
			Price:       price,
			BookingID:   bookingID,
		}
		uc.applyCardPayment(txCtx, booking.UserID, record)

		// 6. Пишем запись в журнал потребления
		if _, err := uc.consumptionRepo.Create(txCtx, record); err != nil {
			uc.logger.Error("CompleteBooking: failed to create consumption record for booking id=%d: %v",
				bookingID, err)
			return fmt.Errorf("%w: failed to create consumption record: %v", ErrInternal, err)
		}

		// 7. Переводим бронирование в completed
		if err := uc.markCompleted(txCtx, bookingID); err != nil {
			return err
		}

		uc.logger.Info("CompleteBooking: successfully completed booking id=%d, payment=%s",
			bookingID, record.PaymentType)
		return nil
	})
}

// markCompleted переводит бронирование в статус completed
func (uc *UseCase) markCompleted(ctx context.Context, bookingID int64) error {
	if err := uc.bookingRepo.Complete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		uc.logger.Error("CompleteBooking: failed to mark booking id=%d completed: %v", bookingID, err)
		return fmt.Errorf("%w: failed to mark booking completed: %v", ErrInternal, err)
	}
	return nil
}

// lookupService получает название и цену услуги бронирования.
// Любая ошибка каталога деградирует до значений по умолчанию
func (uc *UseCase) lookupService(ctx context.Context, booking *domain.Booking) (string, float64) {
	if booking.ServiceID == nil {
		return fallbackServiceName, 0
	}

	svc, err := uc.catalog.GetByID(ctx, *booking.ServiceID)
	if err != nil {
		uc.logger.Warn("CompleteBooking: failed to get service id=%d for booking id=%d: %v",
			*booking.ServiceID, booking.ID, err)
		return fallbackServiceName, 0
	}

	return svc.Name, svc.Price
}

// applyCardPayment списывает визит с абонемента клиента.
// Если визитов нет (или клиент не найден) - оплата наличными
func (uc *UseCase) applyCardPayment(ctx context.Context, userID int64, record *domain.ConsumptionRecord) {
	customer, err := uc.customerRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Warn("CompleteBooking: failed to get customer id=%d: %v", userID, err)
		record.PaymentType = domain.PaymentCash
		return
	}

	record.CardTimesBefore = customer.CardTimes

	if !customer.HasCardTimes() {
		record.PaymentType = domain.PaymentCash
		record.CardTimesAfter = customer.CardTimes
		return
	}

	remaining, err := uc.customerRepo.DecrementCardTimes(ctx, userID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrNoCardTimes) {
			// Визиты закончились между чтением и списанием
			record.PaymentType = domain.PaymentCash
			record.CardTimesAfter = record.CardTimesBefore
			return
		}
		uc.logger.Warn("CompleteBooking: failed to decrement card times for customer id=%d: %v", userID, err)
		record.PaymentType = domain.PaymentCash
		record.CardTimesAfter = record.CardTimesBefore
		return
	}

	record.PaymentType = domain.PaymentCard
	record.CardTimesAfter = remaining
}
