package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type CreateCustomerRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Currency string `json:"currency" validate:"required,len=3,alpha"`
}

type CustomerResponse struct {
	Customer model.Customer `json:"customer"`
}

//encore:api public path=/v1/customers method=POST tag:idempotency
func (s *Billing) CreateCustomer(ctx context.Context, req *CreateCustomerRequest) (*CustomerResponse, error) {
	result, err := s.customers.CreateCustomer(ctx, req.Currency)
	if err != nil {
		rlog.Error("failed to create customer", "error", err)
		return nil, err
	}

	return &CustomerResponse{Customer: *result}, nil
}

// Validate implements validation for CreateCustomerRequest using go-playground/validator
func (r *CreateCustomerRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
