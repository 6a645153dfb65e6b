package reminders

import (
	"context"

	"github.com/m04kA/MYB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// ReminderRepository интерфейс репозитория напоминаний
type ReminderRepository interface {
	Create(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]*domain.Reminder, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
