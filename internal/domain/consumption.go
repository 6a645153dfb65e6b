package domain

import "time"

// PaymentType способ оплаты завершенного визита
type PaymentType string

const (
	PaymentCard PaymentType = "card" // списание с абонемента
	PaymentCash PaymentType = "cash"
)

// ConsumptionRecord is the ledger entry written once per completed booking.
// BookingID is the idempotency key: a record already tied to the booking id
// suppresses re-creation on repeated completion requests.
type ConsumptionRecord struct {
	ID              int64
	UserID          int64
	ServiceID       *int64
	ServiceName     string
	Price           float64
	PaymentType     PaymentType
	CardTimesBefore int
	CardTimesAfter  int
	BookingID       int64
	ConsumedAt      time.Time
	CreatedAt       time.Time
}
