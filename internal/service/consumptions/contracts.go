package consumptions

import (
	"context"

	"github.com/m04kA/MYB-BookingService/internal/domain"
)

// ConsumptionRepository интерфейс репозитория записей о потреблении
type ConsumptionRepository interface {
	ListByUser(ctx context.Context, userID int64, limit, offset uint64) ([]*domain.ConsumptionRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
