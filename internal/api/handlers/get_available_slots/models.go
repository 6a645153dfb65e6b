package get_available_slots

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/MYB-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/MYB-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "10:25"
}

// SlotsResponse HTTP модель ответа со списком слотов
type SlotsResponse struct {
	Date            string         `json:"date"` // "2025-10-15"
	Hours           string         `json:"hours"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// parseQuery разбирает query параметры в модель use case
func parseQuery(date, serviceID, duration, step string) (*getAvailableSlots.Request, error) {
	parsedDate, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %v", err)
	}

	req := &getAvailableSlots.Request{Date: parsedDate}

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

	if step != "" {
		s, err := strconv.Atoi(step)
		if err != nil {
			return nil, fmt.Errorf("invalid stepMinutes: %v", err)
		}
		req.StepMinutes = &s
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		}
	}

	return &SlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		Hours:           resp.Hours,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
