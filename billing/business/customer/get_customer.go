package customer

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

// GetCustomer handles the business logic for retrieving a customer by ID
func (b *business) GetCustomer(ctx context.Context, id int32) (*model.Customer, error) {
	dbCustomer, err := b.customerRepo.GetCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "customer not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get customer"}
	}

	return convertDBCustomerToModel(dbCustomer), nil
}
