package get_earliest_slot

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/MYB-BookingService/internal/domain"
	getEarliestSlot "github.com/m04kA/MYB-BookingService/internal/usecase/get_earliest_slot"
)

// EarliestSlotResponse HTTP модель ответа с ближайшим свободным слотом
type EarliestSlotResponse struct {
	Date            string `json:"date"`      // "2025-10-15"
	StartTime       string `json:"startTime"` // "10:00", пустая строка - слотов нет
	DurationMinutes int    `json:"durationMinutes"`
	Found           bool   `json:"found"`
}

// parseQuery разбирает query параметры в модель use case
func parseQuery(date, serviceID, duration string) (*getEarliestSlot.Request, error) {
	parsedDate, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %v", err)
	}

	req := &getEarliestSlot.Request{Date: parsedDate}

	if serviceID != "" {
		id, err := strconv.ParseInt(serviceID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid serviceId: %v", err)
		}
		req.ServiceID = &id
	}

	if duration != "" {
		d, err := strconv.Atoi(duration)
		if err != nil {
			return nil, fmt.Errorf("invalid durationMinutes: %v", err)
		}
		req.DurationMinutes = &d
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getEarliestSlot.Response) *EarliestSlotResponse {
	return &EarliestSlotResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime,
		DurationMinutes: resp.DurationMinutes,
		Found:           resp.Found,
	}
}
