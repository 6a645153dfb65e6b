package domain

import "time"

// Customer represents a shop customer.
// CardTimes is the prepaid membership credit: a count of service visits,
// decremented once per completed booking.
type Customer struct {
	ID        int64
	Nickname  string
	Phone     *string
	CardTimes int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCardTimes returns true if the customer has membership credit left
func (c *Customer) HasCardTimes() bool {
	return c.CardTimes > 0
}
