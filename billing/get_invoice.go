package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

//encore:api public path=/v1/invoices/:id method=GET
func (s *Billing) GetInvoice(ctx context.Context, id int) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	result, err := s.invoices.GetInvoice(ctx, int32(id))
	if err != nil {
		rlog.Error("failed to get invoice", "error", err, "id", id)
		return nil, err
	}

	return &InvoiceResponse{Invoice: *result}, nil
}
