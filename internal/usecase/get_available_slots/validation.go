package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/MYB-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	// Проверяем, что дата не является нулевой
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

	if req.StepMinutes != nil {
		if *req.StepMinutes < domain.MinStepMinutes || *req.StepMinutes > domain.MaxStepMinutes {
			return fmt.Errorf("%w: stepMinutes must be between %d and %d",
				ErrInvalidInput, domain.MinStepMinutes, domain.MaxStepMinutes)
		}
	}

	return nil
}

// validateDate проверяет, что дата подходит для выдачи слотов
func validateDate(requestDate time.Time, now time.Time) error {
	// Слоты на прошедшие даты не выдаются
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}

	return nil
}
