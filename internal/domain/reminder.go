package domain

import "time"

// ReminderType тип напоминания о предстоящем визите
type ReminderType string

const (
	ReminderBefore24h ReminderType = "before24h"
	ReminderBefore2h  ReminderType = "before2h"
)

// Reminder is a recorded booking reminder. Sending a reminder only writes
// this record; no real message delivery happens in this service.
type Reminder struct {
	ID        int64
	BookingID int64
	UserID    int64
	Type      ReminderType
	Message   string
	Status    string
	SentAt    time.Time
}

// IsValidReminderType проверяет допустимость типа напоминания
func IsValidReminderType(s string) bool {
	return ReminderType(s) == ReminderBefore24h || ReminderType(s) == ReminderBefore2h
}
