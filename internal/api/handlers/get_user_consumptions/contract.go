package get_user_consumptions

import (
	"context"

	"github.com/m04kA/MYB-BookingService/internal/service/consumptions/models"
)

type ConsumptionService interface {
	GetUserConsumptions(ctx context.Context, req *models.GetUserConsumptionsRequest) (*models.ConsumptionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
