package billing

import (
	"context"

	"encore.dev/pubsub"
	"encore.dev/rlog"
)

var _ = pubsub.NewSubscription(Invoices, "process-invoice", pubsub.SubscriptionConfig[*InvoiceMessage]{
	Handler:        pubsub.MethodHandler((*Billing).ProcessInvoice),
	MaxConcurrency: 25,
	RetryPolicy: &pubsub.RetryPolicy{
		MaxRetries: 50,
	},
})

// ProcessInvoice consumes one invoice at a time and runs the charge state
// machine. The message is acknowledged only when the state machine recorded
// an outcome; a returned error nacks the message so the broker redelivers it
// with the invoice status unchanged.
func (s *Billing) ProcessInvoice(ctx context.Context, msg *InvoiceMessage) error {
	rlog.Info("received invoice for charging", "invoice_id", msg.Invoice.ID, "customer_id", msg.Invoice.CustomerID)

	if err := s.charge.Process(ctx, msg.Invoice); err != nil {
		rlog.Warn("invoice processing failed, message will be redelivered", "invoice_id", msg.Invoice.ID, "error", err)
		return err
	}
	return nil
}
