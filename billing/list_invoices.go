package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type ListInvoicesRequest struct {
	Status string `query:"status"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

type ListInvoicesResponse struct {
	Invoices   []model.Invoice `json:"invoices"`
	TotalCount int64           `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

//encore:api public path=/v1/invoices method=GET
func (s *Billing) ListInvoices(ctx context.Context, req *ListInvoicesRequest) (*ListInvoicesResponse, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	if req.Status != "" {
		return s.listInvoicesByStatus(ctx, req)
	}

	invoices, totalCount, err := s.invoices.ListInvoices(ctx, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to list invoices", "error", err)
		return nil, err
	}

	response := &ListInvoicesResponse{
		Invoices:   make([]model.Invoice, len(invoices)),
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}
	for i, inv := range invoices {
		response.Invoices[i] = *inv
	}

	return response, nil
}

func (s *Billing) listInvoicesByStatus(ctx context.Context, req *ListInvoicesRequest) (*ListInvoicesResponse, error) {
	status, err := model.ParseInvoiceStatus(req.Status)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice status"}
	}

	invoices, err := s.invoices.FetchByStatus(ctx, status)
	if err != nil {
		rlog.Error("failed to list invoices by status", "status", status, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list invoices"}
	}

	response := &ListInvoicesResponse{
		Invoices:   make([]model.Invoice, len(invoices)),
		TotalCount: int64(len(invoices)),
		Limit:      req.Limit,
		Offset:     req.Offset,
	}
	for i, inv := range invoices {
		response.Invoices[i] = *inv
	}

	return response, nil
}
