package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/MYB-BookingService/internal/domain"
	"github.com/m04kA/MYB-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes != nil {
		if *req.DurationMinutes < domain.MinDurationMinutes || *req.DurationMinutes > domain.MaxDurationMinutes {
			return fmt.Errorf("%w: durationMinutes must be between %d and %d",
				ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
		}
	}

	if req.ContactPhone != nil && len(*req.ContactPhone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: contactPhone is too long", ErrInvalidInput)
	}

	if req.Remark != nil && len(*req.Remark) > domain.MaxRemarkLength {
		return fmt.Errorf("%w: remark is too long", ErrInvalidInput)
	}

	return nil
}

// hasConflict проверяет пересечение запрошенного интервала с активными
// бронированиями. Интервалы полуоткрытые: бронирование, заканчивающееся
// ровно в момент начала нового, конфликтом не считается
func hasConflict(startMinute, endMinute int, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		r, err := booking.Range()
		if err != nil {
			// Бронирование с битым временем пропускаем
			continue
		}

		if types.Overlaps(r.StartMinute, r.EndMinute, startMinute, endMinute) {
			return true
		}
	}

	return false
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
