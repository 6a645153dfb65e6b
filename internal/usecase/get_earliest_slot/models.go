package get_earliest_slot

import "time"

// Request модель запроса на получение ближайшего свободного слота
type Request struct {
	Date            time.Time // Дата для поиска слота (без времени)
	ServiceID       *int64    // ID услуги - задаёт длительность слота (опционально)
	DurationMinutes *int      // Явная длительность, перекрывает длительность услуги (опционально)
}

// Response модель ответа с ближайшим свободным слотом
type Response struct {
	Date            time.Time // Дата, на которую искался слот
	DurationMinutes int       // Длительность слота в минутах
	StartTime       string    // Время начала слота "HH:MM", пустая строка - свободных слотов нет
	Found           bool      // Найден ли свободный слот
}
