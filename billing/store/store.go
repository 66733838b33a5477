package store

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/billing/store/customers"
	"encore.app/billing/store/invoices"
)

// Store combines all domain-specific repositories
type Store struct {
	Invoices  invoices.Querier
	Customers customers.Querier
}

// NewStore creates a new Store with all domain queriers
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Invoices:  invoices.New(db),
		Customers: customers.New(db),
	}
}
