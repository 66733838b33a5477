package invoice

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

// GetInvoice handles the business logic for retrieving an invoice by ID
func (b *business) GetInvoice(ctx context.Context, id int32) (*model.Invoice, error) {
	dbInvoice, err := b.invoiceRepo.GetInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get invoice"}
	}

	return convertDBInvoiceToModel(dbInvoice)
}
