package complete_booking

import (
	"context"

	"github.com/m04kA/MYB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Complete(ctx context.Context, id int64) error
}

// ConsumptionRepository интерфейс репозитория записей о потреблении
type ConsumptionRepository interface {
	Create(ctx context.Context, record *domain.ConsumptionRecord) (*domain.ConsumptionRecord, error)
	ExistsByBookingID(ctx context.Context, bookingID int64) (bool, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	DecrementCardTimes(ctx context.Context, id int64) (int, error)
}

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
