package model

import (
	"fmt"
	"time"
)

type Invoice struct {
	ID         int32         `json:"id"`
	CustomerID int32         `json:"customer_id"`
	Amount     Money         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "PENDING"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
	InvoiceStatusRetry   InvoiceStatus = "RETRY"
	InvoiceStatusFailed  InvoiceStatus = "FAILED"
)

// ParseInvoiceStatus validates a raw status value coming from a request or a
// channel payload.
func ParseInvoiceStatus(raw string) (InvoiceStatus, error) {
	switch status := InvoiceStatus(raw); status {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusRetry, InvoiceStatusFailed:
		return status, nil
	default:
		return "", fmt.Errorf("unknown invoice status %q", raw)
	}
}

// Processable reports whether invoices in this status may be picked up by a
// billing run. PAID and FAILED are terminal.
func (s InvoiceStatus) Processable() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusRetry
}

// Terminal reports whether the status can never transition again.
func (s InvoiceStatus) Terminal() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusFailed
}
