package reminders

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MYB-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/MYB-BookingService/internal/service/reminders/models"
)

const statusSent = "sent"

// Service сервис напоминаний о предстоящих визитах.
// Реальной доставки сообщений здесь нет - фиксируется только факт отправки
type Service struct {
	bookingRepo  BookingRepository
	reminderRepo ReminderRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса напоминаний
func NewService(bookingRepo BookingRepository, reminderRepo ReminderRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		reminderRepo: reminderRepo,
		logger:       logger,
	}
}

// Send отправляет напоминание по бронированию
// Напоминания отправляются только по предстоящим (pending/confirmed) бронированиям
func (s *Service) Send(ctx context.Context, req *models.SendReminderRequest) (*models.ReminderResponse, error) {
	s.logger.Info("Send: sending reminder type=%s for booking id=%d", req.Type, req.BookingID)

	if !domain.IsValidReminderType(req.Type) {
		s.logger.Warn("Send: invalid reminder type=%s", req.Type)
		return nil, fmt.Errorf("%w: invalid reminder type", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Send: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Send: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Send - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Send: booking id=%d is not upcoming, status=%s", req.BookingID, booking.Status)
		return nil, ErrBookingInactive
	}

	message := req.Message
	if message == "" {
		message = s.defaultMessage(booking, domain.ReminderType(req.Type))
	}

	reminder := &domain.Reminder{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		Type:      domain.ReminderType(req.Type),
		Message:   message,
		Status:    statusSent,
	}

	created, err := s.reminderRepo.Create(ctx, reminder)
	if err != nil {
		s.logger.Error("Send: failed to store reminder for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Send - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Send: successfully sent reminder id=%d for booking id=%d", created.ID, booking.ID)
	return models.FromDomainReminder(created), nil
}

// ListByBooking получает напоминания по бронированию
func (s *Service) ListByBooking(ctx context.Context, bookingID int64) (*models.ReminderListResponse, error) {
	s.logger.Info("ListByBooking: fetching reminders for booking id=%d", bookingID)

	reminders, err := s.reminderRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("ListByBooking: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ListByBooking - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReminderList(reminders), nil
}

// defaultMessage формирует текст напоминания по типу
func (s *Service) defaultMessage(booking *domain.Booking, remType domain.ReminderType) string {
	when := fmt.Sprintf("%s %s", booking.BookingDate.Format(domain.DateFormat), booking.StartTime.String())

	switch remType {
	case domain.ReminderBefore24h:
		return fmt.Sprintf("Напоминаем: завтра у вас запись на %s", when)
	case domain.ReminderBefore2h:
		return fmt.Sprintf("Напоминаем: через 2 часа у вас запись на %s", when)
	default:
		return fmt.Sprintf("Напоминаем о записи на %s", when)
	}
}
