package models

import (
	"time"

	"github.com/m04kA/MYB-BookingService/internal/domain"
)

// GetUserConsumptionsRequest запрос на получение истории потребления
type GetUserConsumptionsRequest struct {
	UserID int64  `json:"userId"`
	Limit  uint64 `json:"limit,omitempty"`
	Offset uint64 `json:"offset,omitempty"`
}

// ConsumptionResponse ответ с данными записи о потреблении
type ConsumptionResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	ServiceID       *int64    `json:"serviceId,omitempty"`
	ServiceName     string    `json:"serviceName"`
	Price           float64   `json:"price"`
	PaymentType     string    `json:"paymentType"`
	CardTimesBefore int       `json:"cardTimesBefore"`
	CardTimesAfter  int       `json:"cardTimesAfter"`
	BookingID       int64     `json:"bookingId"`
	ConsumedAt      time.Time `json:"consumedAt"`
}

// ConsumptionListResponse ответ со списком записей
type ConsumptionListResponse struct {
	Consumptions []ConsumptionResponse `json:"consumptions"`
}

// FromDomainConsumption конвертирует domain модель в DTO
func FromDomainConsumption(c *domain.ConsumptionRecord) *ConsumptionResponse {
	if c == nil {
		return nil
	}

	return &ConsumptionResponse{
		ID:              c.ID,
		UserID:          c.UserID,
		ServiceID:       c.ServiceID,
		ServiceName:     c.ServiceName,
		Price:           c.Price,
		PaymentType:     string(c.PaymentType),
		CardTimesBefore: c.CardTimesBefore,
		CardTimesAfter:  c.CardTimesAfter,
		BookingID:       c.BookingID,
		ConsumedAt:      c.ConsumedAt,
	}
}

// FromDomainConsumptionList конвертирует список domain моделей в DTO
func FromDomainConsumptionList(records []*domain.ConsumptionRecord) *ConsumptionListResponse {
	if records == nil {
		return &ConsumptionListResponse{Consumptions: []ConsumptionResponse{}}
	}

	resp := &ConsumptionListResponse{
		Consumptions: make([]ConsumptionResponse, len(records)),
	}

	for i, record := range records {
		if recordResp := FromDomainConsumption(record); recordResp != nil {
			resp.Consumptions[i] = *recordResp
		}
	}

	return resp
}
