package shopconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MYB-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/MYB-BookingService/internal/infra/storage/shopconfig"
	"github.com/m04kA/MYB-BookingService/internal/service/shopconfig/models"
)

// Service сервис для работы с настройками салона
type Service struct {
	settingsRepo SettingsRepository
	defaultHours string
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, defaultHours string, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		defaultHours: defaultHours,
		logger:       logger,
	}
}

// GetHours получает часы работы салона
// Если настройка не задана в БД, возвращается значение по умолчанию из конфигурации
func (s *Service) GetHours(ctx context.Context) (*models.HoursResponse, error) {
	raw, err := s.settingsRepo.Get(ctx, domain.ShopHoursKey)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingNotFound) {
			s.logger.Info("GetHours: setting not found, using default hours=%q", s.defaultHours)
			raw = s.defaultHours
		} else {
			s.logger.Error("GetHours: repository error: %v", err)
			return nil, fmt.Errorf("%w: GetHours - repository error: %v", ErrInternal, err)
		}
	}

	hours, err := domain.ParseShopHours(raw)
	if err != nil {
		// Значение в БД оказалось битым - откатываемся на дефолт,
		// чтобы публичная выдача слотов не падала
		s.logger.Error("GetHours: stored hours=%q are invalid: %v, falling back to default", raw, err)
		hours, err = domain.ParseShopHours(s.defaultHours)
		if err != nil {
			return nil, fmt.Errorf("%w: GetHours - invalid default hours: %v", ErrInternal, err)
		}
		raw = s.defaultHours
	}

	return &models.HoursResponse{
		Hours:     raw,
		OpenTime:  hours.Open().String(),
		CloseTime: hours.Close().String(),
	}, nil
}

// GetBusinessHours получает часы работы в доменном представлении
// Используется сценариями расчета слотов
func (s *Service) GetBusinessHours(ctx context.Context) (domain.BusinessHours, error) {
	resp, err := s.GetHours(ctx)
	if err != nil {
		return domain.BusinessHours{}, err
	}

	return domain.ParseShopHours(resp.Hours)
}

// SetHours обновляет часы работы салона
// Доступно только администратору. Интервалы через полночь не поддерживаются
func (s *Service) SetHours(ctx context.Context, req *models.UpdateHoursRequest) (*models.HoursResponse, error) {
	s.logger.Info("SetHours: updating shop hours to %q", req.Hours)

	hours, err := domain.ParseShopHours(req.Hours)
	if err != nil {
		s.logger.Warn("SetHours: invalid hours=%q: %v", req.Hours, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidHours, err)
	}

	// Сохраняем в нормализованном виде "HH:MM - HH:MM"
	normalized := hours.String()
	if err := s.settingsRepo.Set(ctx, domain.ShopHoursKey, normalized); err != nil {
		s.logger.Error("SetHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: SetHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetHours: successfully updated shop hours to %q", normalized)
	return &models.HoursResponse{
		Hours:     normalized,
		OpenTime:  hours.Open().String(),
		CloseTime: hours.Close().String(),
	}, nil
}
