package model

import (
	"time"
)

// Customer is immutable after creation; its currency is the billing currency
// every invoice for this customer must be denominated in.
type Customer struct {
	ID        int32     `json:"id"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}
