package get_available_slots

import (
	"time"

	"github.com/m04kA/MYB-BookingService/internal/domain"
)

// collectBookedRanges собирает занятые интервалы активных бронирований.
// Бронирования с битым временем начала пропускаются - они не должны
// блокировать выдачу слотов целиком
func collectBookedRanges(bookings []*domain.Booking) []domain.BookedRange {
	ranges := make([]domain.BookedRange, 0, len(bookings))

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		r, err := booking.Range()
		if err != nil {
			continue
		}

		ranges = append(ranges, r)
	}

	return ranges
}

// filterFreeSlots оставляет только слоты, не пересекающиеся ни с одним
// занятым интервалом. Интервалы полуоткрытые: слот, начинающийся ровно
// в момент окончания бронирования, свободен
func filterFreeSlots(candidates []domain.FreeSlot, booked []domain.BookedRange) []domain.FreeSlot {
	free := make([]domain.FreeSlot, 0, len(candidates))

	for _, slot := range candidates {
		occupied := false
		for _, r := range booked {
			if r.Overlaps(slot.StartMinute, slot.EndMinute) {
				occupied = true
				break
			}
		}
		if !occupied {
			free = append(free, slot)
		}
	}

	return free
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
