package charge

import (
	"context"

	"encore.app/billing/business/invoice"
	"encore.app/billing/model"
	"encore.app/billing/payment"
)

// Business is the single authority for invoice status transitions. Process
// drives one invoice through the charge state machine; concurrency across
// invoices is entirely a property of how many channel messages are dispatched
// at once.
type Business interface {
	Process(ctx context.Context, inv model.Invoice) error
}

// Notifier delivers payment outcome notifications best-effort. A lost
// notification never blocks or rolls back a status transition, so Notify
// returns nothing.
type Notifier interface {
	Notify(ctx context.Context, notification model.Notification)
}

type business struct {
	provider payment.Provider
	invoices invoice.Business
	notifier Notifier
}

// NewChargeBusiness creates the charge state machine
func NewChargeBusiness(provider payment.Provider, invoices invoice.Business, notifier Notifier) Business {
	return &business{
		provider: provider,
		invoices: invoices,
		notifier: notifier,
	}
}
