package get_available_slots

import (
	"time"

	"github.com/m04kA/MYB-BookingService/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	Date            time.Time // Дата для получения слотов (без времени)
	ServiceID       *int64    // ID услуги - задаёт длительность слота (опционально)
	DurationMinutes *int      // Явная длительность, перекрывает длительность услуги (опционально)
	StepMinutes     *int      // Шаг сетки слотов, перекрывает шаг из конфигурации (опционально)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	Hours           string    // Часы работы салона, например "09:00 - 20:00"
	DurationMinutes int       // Длительность слота в минутах
	Slots           []Slot    // Список свободных слотов
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота, например "10:00"
	EndTime   types.TimeString // Время окончания слота, например "10:25"
}
