package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

//encore:api public path=/v1/customers/:id method=GET
func (s *Billing) GetCustomer(ctx context.Context, id int) (*CustomerResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid customer ID"}
	}

	result, err := s.customers.GetCustomer(ctx, int32(id))
	if err != nil {
		rlog.Error("failed to get customer", "error", err, "id", id)
		return nil, err
	}

	return &CustomerResponse{Customer: *result}, nil
}
