package invoice

import (
	"context"
	"fmt"

	"encore.app/billing/model"
)

// FetchByStatus returns every invoice currently in the given status. An empty
// backlog is a valid result, not an error.
func (b *business) FetchByStatus(ctx context.Context, status model.InvoiceStatus) ([]*model.Invoice, error) {
	dbInvoices, err := b.invoiceRepo.ListInvoicesByStatus(ctx, string(status))
	if err != nil {
		return nil, fmt.Errorf("list invoices in status %s: %w", status, err)
	}

	result := make([]*model.Invoice, 0, len(dbInvoices))
	for _, dbInvoice := range dbInvoices {
		converted, err := convertDBInvoiceToModel(dbInvoice)
		if err != nil {
			return nil, err
		}
		result = append(result, converted)
	}

	return result, nil
}
