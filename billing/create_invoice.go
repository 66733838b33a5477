package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type CreateInvoiceRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	CustomerID int32  `json:"customer_id" validate:"required,gt=0"`
	Amount     string `json:"amount" validate:"required"`
	Currency   string `json:"currency" validate:"required,len=3,alpha"`
}

type InvoiceResponse struct {
	Invoice model.Invoice `json:"invoice"`
}

//encore:api public path=/v1/invoices method=POST tag:idempotency
func (s *Billing) CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*InvoiceResponse, error) {
	amount, err := model.NewMoney(req.Amount, req.Currency)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "amount is not a valid decimal number"}
	}

	result, err := s.invoices.CreateInvoice(ctx, &model.Invoice{
		CustomerID: req.CustomerID,
		Amount:     amount,
	})
	if err != nil {
		rlog.Error("failed to create invoice", "customer_id", req.CustomerID, "error", err)
		return nil, err
	}

	return &InvoiceResponse{Invoice: *result}, nil
}

// Validate implements validation for CreateInvoiceRequest using go-playground/validator
func (r *CreateInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "amount is not a valid decimal number"}
	}
	if !amount.IsPositive() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "amount must be positive"}
	}

	return nil
}
