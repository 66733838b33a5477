package payment

import (
	"context"

	"encore.app/billing/model"
)

// Provider is the external capability that actually moves money.
//
// Charge returns (true, nil) when the customer account was charged the full
// invoice amount and (false, nil) when the account balance did not allow the
// charge. Any other failure is reported as an *Error carrying one of the
// closed set of failure codes, or as an arbitrary error which callers must
// treat as unclassified.
type Provider interface {
	Charge(ctx context.Context, invoice model.Invoice) (bool, error)
}
