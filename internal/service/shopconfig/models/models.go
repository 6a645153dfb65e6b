package models

// HoursResponse ответ с часами работы салона
type HoursResponse struct {
	Hours     string `json:"hours"`     // "09:00 - 20:00"
	OpenTime  string `json:"openTime"`  // "09:00"
	CloseTime string `json:"closeTime"` // "20:00"
}

// UpdateHoursRequest запрос на обновление часов работы
type UpdateHoursRequest struct {
	Hours string `json:"hours"` // "09:00 - 20:00"
}
