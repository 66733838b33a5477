package charge

import (
	"context"

	"encore.dev/rlog"

	"encore.app/billing/model"
	"encore.app/billing/payment"
)

const (
	paidText   = "Your invoice has been paid!"
	failedText = "An error has occurred during the payment of your invoice"
)

// Process charges one invoice and writes back exactly one of PAID, RETRY or
// FAILED. Channel redelivery may hand us an invoice that was already settled
// by an earlier attempt; those are skipped before any money moves.
//
// Only the status write can fail the invocation. A returned error means the
// outcome was not recorded and the message must be redelivered.
func (b *business) Process(ctx context.Context, inv model.Invoice) error {
	if inv.Status.Terminal() {
		rlog.Info("skipping invoice already in terminal status", "invoice_id", inv.ID, "status", inv.Status)
		return nil
	}

	result := b.chargeOutcome(ctx, inv)

	rows, err := b.invoices.UpdateStatus(ctx, inv.ID, result)
	if err != nil {
		return err
	}
	if rows == 0 {
		rlog.Warn("invoice vanished before status update", "invoice_id", inv.ID, "status", result)
		return nil
	}

	rlog.Info("updated invoice status", "invoice_id", inv.ID, "status", result)
	return nil
}

// chargeOutcome invokes the payment provider and maps the result onto the
// next invoice status, publishing outcome notifications along the way.
func (b *business) chargeOutcome(ctx context.Context, inv model.Invoice) model.InvoiceStatus {
	charged, err := b.provider.Charge(ctx, inv)
	if err == nil {
		if charged {
			rlog.Info("customer account charged", "invoice_id", inv.ID, "customer_id", inv.CustomerID)
			b.notifier.Notify(ctx, model.Notification{
				CustomerID: inv.CustomerID,
				InvoiceID:  inv.ID,
				Text:       paidText,
			})
			return model.InvoiceStatusPaid
		}

		rlog.Info("customer account balance did not allow the charge", "invoice_id", inv.ID, "customer_id", inv.CustomerID)
		return model.InvoiceStatusRetry
	}

	switch code := payment.Classify(err); code {
	case payment.CodeCurrencyMismatch, payment.CodeCustomerNotFound:
		rlog.Warn("unrecoverable failure during charge", "invoice_id", inv.ID, "customer_id", inv.CustomerID, "code", code, "error", err)
		b.notifier.Notify(ctx, model.Notification{
			CustomerID: inv.CustomerID,
			InvoiceID:  inv.ID,
			Text:       failedText,
		})
		return model.InvoiceStatusFailed

	case payment.CodeNetwork:
		rlog.Warn("network failure during charge", "invoice_id", inv.ID, "customer_id", inv.CustomerID, "error", err)
		return model.InvoiceStatusRetry

	default:
		rlog.Warn("unclassified failure during charge", "invoice_id", inv.ID, "customer_id", inv.CustomerID, "error", err)
		return model.InvoiceStatusRetry
	}
}
