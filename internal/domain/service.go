package domain

import "time"

// Service represents a barber service offered by the shop
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
	Description     *string
	IsActive        bool
	SortOrder       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
