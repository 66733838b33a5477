package payment

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jackc/pgx/v5"

	"encore.app/billing/model"
	"encore.app/billing/store/customers"
)

// SimulatedProvider stands in for a real payment gateway in local and preview
// environments. It looks the customer up so that account-level failures
// (unknown customer, wrong currency) behave like the real thing, and it
// simulates declines and network flakiness at configurable rates.
type SimulatedProvider struct {
	customers          customers.Querier
	declineRate        float64
	networkFailureRate float64
	random             func() float64
}

func NewSimulatedProvider(customerRepo customers.Querier, declineRate, networkFailureRate float64) *SimulatedProvider {
	return &SimulatedProvider{
		customers:          customerRepo,
		declineRate:        declineRate,
		networkFailureRate: networkFailureRate,
		random:             rand.Float64,
	}
}

func (p *SimulatedProvider) Charge(ctx context.Context, invoice model.Invoice) (bool, error) {
	if p.random() < p.networkFailureRate {
		return false, &Error{Code: CodeNetwork, InvoiceID: invoice.ID, CustomerID: invoice.CustomerID}
	}

	customer, err := p.customers.GetCustomer(ctx, invoice.CustomerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, &Error{Code: CodeCustomerNotFound, InvoiceID: invoice.ID, CustomerID: invoice.CustomerID}
		}
		return false, fmt.Errorf("look up customer %d: %w", invoice.CustomerID, err)
	}

	if customer.Currency != invoice.Amount.Currency {
		return false, &Error{Code: CodeCurrencyMismatch, InvoiceID: invoice.ID, CustomerID: invoice.CustomerID}
	}

	return p.random() >= p.declineRate, nil
}
