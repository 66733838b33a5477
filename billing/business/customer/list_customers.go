package customer

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store/customers"
)

// ListCustomers returns a page of customers together with the total count.
func (b *business) ListCustomers(ctx context.Context, limit, offset int32) ([]*model.Customer, int64, error) {
	dbCustomers, err := b.customerRepo.ListCustomers(ctx, customers.ListCustomersParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list customers"}
	}

	totalCount, err := b.customerRepo.CountCustomers(ctx)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count customers"}
	}

	result := make([]*model.Customer, 0, len(dbCustomers))
	for _, dbCustomer := range dbCustomers {
		result = append(result, convertDBCustomerToModel(dbCustomer))
	}

	return result, totalCount, nil
}
