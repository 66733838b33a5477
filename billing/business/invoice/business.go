package invoice

import (
	"context"

	"encore.app/billing/model"
	"encore.app/billing/store/customers"
	"encore.app/billing/store/invoices"
)

type Business interface {
	CreateInvoice(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error)
	GetInvoice(ctx context.Context, id int32) (*model.Invoice, error)
	ListInvoices(ctx context.Context, limit, offset int32) ([]*model.Invoice, int64, error)
	FetchByStatus(ctx context.Context, status model.InvoiceStatus) ([]*model.Invoice, error)
	UpdateStatus(ctx context.Context, id int32, status model.InvoiceStatus) (int64, error)
}

// business handles business logic for invoices
type business struct {
	invoiceRepo  invoices.Querier
	customerRepo customers.Querier
}

// NewInvoiceBusiness creates the invoice business layer
func NewInvoiceBusiness(invoiceRepo invoices.Querier, customerRepo customers.Querier) Business {
	return &business{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
	}
}
