package consumptions

import (
	"context"
	"fmt"

	"github.com/m04kA/MYB-BookingService/internal/service/consumptions/models"
)

const defaultLimit = 50

// Service сервис истории потребления
type Service struct {
	consumptionRepo ConsumptionRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса истории потребления
func NewService(consumptionRepo ConsumptionRepository, logger Logger) *Service {
	return &Service{
		consumptionRepo: consumptionRepo,
		logger:          logger,
	}
}

// GetUserConsumptions получает историю потребления пользователя
func (s *Service) GetUserConsumptions(ctx context.Context, req *models.GetUserConsumptionsRequest) (*models.ConsumptionListResponse, error) {
	s.logger.Info("GetUserConsumptions: fetching records for user=%d, limit=%d, offset=%d",
		req.UserID, req.Limit, req.Offset)

	limit := req.Limit
	if limit == 0 {
		limit = defaultLimit
	}

	records, err := s.consumptionRepo.ListByUser(ctx, req.UserID, limit, req.Offset)
	if err != nil {
		s.logger.Error("GetUserConsumptions: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserConsumptions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserConsumptions: successfully fetched %d records for user=%d", len(records), req.UserID)
	return models.FromDomainConsumptionList(records), nil
}
