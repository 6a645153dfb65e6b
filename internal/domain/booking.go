package domain

import (
	"time"

	"github.com/m04kA/MYB-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reserved time slot in the barbershop
type Booking struct {
	ID              int64
	UserID          int64
	ServiceID       *int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	ContactPhone *string
	Remark       *string

	CompletedAt *time.Time
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its time range.
// Only cancelled bookings release the range.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCompleted returns true if the booking has already been completed
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted && b.CompletedAt != nil
}

// Range returns the occupied interval in minutes from midnight.
// An error means the stored start time is malformed.
func (b *Booking) Range() (BookedRange, error) {
	start, err := b.StartTime.Minutes()
	if err != nil {
		return BookedRange{}, err
	}
	return BookedRange{StartMinute: start, EndMinute: start + b.DurationMinutes}, nil
}
