package models

import (
	"time"

	"github.com/m04kA/MYB-BookingService/internal/domain"
)

// Request модели

// SendReminderRequest запрос на отправку напоминания
type SendReminderRequest struct {
	BookingID int64  `json:"bookingId"`
	Type      string `json:"type"`              // "before24h" или "before2h"
	Message   string `json:"message,omitempty"` // если пусто, текст формируется автоматически
}

// Response модели

// ReminderResponse ответ с данными напоминания
type ReminderResponse struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"bookingId"`
	UserID    int64     `json:"userId"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	SentAt    time.Time `json:"sentAt"`
}

// ReminderListResponse ответ со списком напоминаний
type ReminderListResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
}

// Методы конвертации

// FromDomainReminder конвертирует domain модель в DTO
func FromDomainReminder(r *domain.Reminder) *ReminderResponse {
	if r == nil {
		return nil
	}

	return &ReminderResponse{
		ID:        r.ID,
		BookingID: r.BookingID,
		UserID:    r.UserID,
		Type:      string(r.Type),
		Message:   r.Message,
		Status:    r.Status,
		SentAt:    r.SentAt,
	}
}

// FromDomainReminderList конвертирует список domain моделей в DTO
func FromDomainReminderList(reminders []*domain.Reminder) *ReminderListResponse {
	if reminders == nil {
		return &ReminderListResponse{Reminders: []ReminderResponse{}}
	}

	resp := &ReminderListResponse{
		Reminders: make([]ReminderResponse, len(reminders)),
	}

	for i, rem := range reminders {
		if remResp := FromDomainReminder(rem); remResp != nil {
			resp.Reminders[i] = *remResp
		}
	}

	return resp
}
