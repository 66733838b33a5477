package invoice

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store/invoices"
)

// ListInvoices returns a page of invoices together with the total count.
func (b *business) ListInvoices(ctx context.Context, limit, offset int32) ([]*model.Invoice, int64, error) {
	dbInvoices, err := b.invoiceRepo.ListInvoices(ctx, invoices.ListInvoicesParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list invoices"}
	}

	totalCount, err := b.invoiceRepo.CountInvoices(ctx)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count invoices"}
	}

	result := make([]*model.Invoice, 0, len(dbInvoices))
	for _, dbInvoice := range dbInvoices {
		converted, err := convertDBInvoiceToModel(dbInvoice)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, converted)
	}

	return result, totalCount, nil
}
