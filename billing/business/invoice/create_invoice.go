package invoice

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store"
	"encore.app/billing/store/invoices"
)

// CreateInvoice creates a new invoice in PENDING status. The amount currency
// must match the owning customer's billing currency.
func (b *business) CreateInvoice(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error) {
	customer, err := b.customerRepo.GetCustomer(ctx, invoice.CustomerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "customer not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to look up customer"}
	}

	if customer.Currency != invoice.Amount.Currency {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invoice currency does not match customer billing currency"}
	}

	dbInvoice, err := b.invoiceRepo.CreateInvoice(ctx, invoices.CreateInvoiceParams{
		CustomerID: invoice.CustomerID,
		Amount:     store.DecimalToNumeric(invoice.Amount.Value),
		Currency:   invoice.Amount.Currency,
		Status:     string(model.InvoiceStatusPending),
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.ForeignKeyViolation {
			return nil, &errs.Error{Code: errs.NotFound, Message: "customer not found"}
		}

		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create invoice"}
	}

	return convertDBInvoiceToModel(dbInvoice)
}

// convertDBInvoiceToModel converts a database Invoice to a domain model Invoice
func convertDBInvoiceToModel(dbInvoice invoices.Invoice) (*model.Invoice, error) {
	amount, err := store.NumericToDecimal(dbInvoice.Amount)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "invalid invoice amount"}
	}

	return &model.Invoice{
		ID:         dbInvoice.ID,
		CustomerID: dbInvoice.CustomerID,
		Amount: model.Money{
			Value:    amount,
			Currency: dbInvoice.Currency,
		},
		Status:    model.InvoiceStatus(dbInvoice.Status),
		CreatedAt: dbInvoice.CreatedAt.Time,
		UpdatedAt: dbInvoice.UpdatedAt.Time,
	}, nil
}
