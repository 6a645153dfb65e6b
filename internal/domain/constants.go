package domain

// Default slot parameters
const (
	DefaultDurationMinutes = 25
	DefaultStepMinutes     = 5
	DefaultShopHours       = "09:00 - 20:00"
)

// Business validation constants
const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 hours
	MinStepMinutes     = 1
	MaxStepMinutes     = 120
	MaxRemarkLength    = 500
	MaxPhoneLength     = 20
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ShopHoursKey ключ настройки часов работы в таблице shop_config
const ShopHoursKey = "shop_hours"

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// IsValidStatus проверяет, что строка является допустимым статусом
func IsValidStatus(s string) bool {
	for _, status := range ValidStatuses {
		if BookingStatus(s) == status {
			return true
		}
	}
	return false
}
