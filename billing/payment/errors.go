package payment

import (
	"errors"
	"fmt"
)

// FailureCode is the closed taxonomy of charge failures. The mapping from
// code to invoice status transition lives in the charge business layer;
// providers only report what went wrong.
type FailureCode string

const (
	// CodeCurrencyMismatch: the invoice currency does not match the
	// customer's billing currency. Terminal.
	CodeCurrencyMismatch FailureCode = "currency_mismatch"

	// CodeCustomerNotFound: the provider has no account for the customer.
	// Terminal.
	CodeCustomerNotFound FailureCode = "customer_not_found"

	// CodeNetwork: a network failure happened while contacting the
	// provider. Retry-eligible.
	CodeNetwork FailureCode = "network"

	// CodeUnclassified: anything the provider could not classify,
	// including errors that are not *Error at all. Retry-eligible.
	CodeUnclassified FailureCode = "unclassified"
)

type Error struct {
	Code       FailureCode
	InvoiceID  int32
	CustomerID int32
}

func (e *Error) Error() string {
	return fmt.Sprintf("payment charge failed (%s): invoice %d, customer %d", e.Code, e.InvoiceID, e.CustomerID)
}

// Classify maps any charge error onto the failure taxonomy. Unknown error
// types and unknown codes both collapse into CodeUnclassified.
func Classify(err error) FailureCode {
	var pe *Error
	if !errors.As(err, &pe) {
		return CodeUnclassified
	}
	switch pe.Code {
	case CodeCurrencyMismatch, CodeCustomerNotFound, CodeNetwork:
		return pe.Code
	default:
		return CodeUnclassified
	}
}
