package get_shop_hours

import (
	"context"

	"github.com/m04kA/MYB-BookingService/internal/service/shopconfig/models"
)

type ShopConfigService interface {
	GetHours(ctx context.Context) (*models.HoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
