package customer

import (
	"context"

	"encore.app/billing/model"
	"encore.app/billing/store/customers"
)

type Business interface {
	CreateCustomer(ctx context.Context, currency string) (*model.Customer, error)
	GetCustomer(ctx context.Context, id int32) (*model.Customer, error)
	ListCustomers(ctx context.Context, limit, offset int32) ([]*model.Customer, int64, error)
}

type business struct {
	customerRepo customers.Querier
}

// NewCustomerBusiness creates the customer business layer
func NewCustomerBusiness(customerRepo customers.Querier) Business {
	return &business{
		customerRepo: customerRepo,
	}
}

// convertDBCustomerToModel converts a database Customer to a domain model Customer
func convertDBCustomerToModel(dbCustomer customers.Customer) *model.Customer {
	return &model.Customer{
		ID:        dbCustomer.ID,
		Currency:  dbCustomer.Currency,
		CreatedAt: dbCustomer.CreatedAt.Time,
	}
}
