package customer

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

// CreateCustomer registers a customer with its billing currency. The currency
// is immutable afterwards.
func (b *business) CreateCustomer(ctx context.Context, currency string) (*model.Customer, error) {
	dbCustomer, err := b.customerRepo.CreateCustomer(ctx, currency)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create customer"}
	}

	return convertDBCustomerToModel(dbCustomer), nil
}
