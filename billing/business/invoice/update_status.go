package invoice

import (
	"context"
	"fmt"

	"encore.app/billing/model"
	"encore.app/billing/store/invoices"
)

// UpdateStatus sets the invoice status in a single atomic statement and
// returns the number of rows affected. Zero rows means the invoice vanished;
// callers decide whether that matters to them.
func (b *business) UpdateStatus(ctx context.Context, id int32, status model.InvoiceStatus) (int64, error) {
	rows, err := b.invoiceRepo.UpdateInvoiceStatus(ctx, invoices.UpdateInvoiceStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		return 0, fmt.Errorf("update invoice %d to status %s: %w", id, status, err)
	}

	return rows, nil
}
