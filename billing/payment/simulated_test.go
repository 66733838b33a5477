package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/store/customer_store"
	"encore.app/billing/model"
	"encore.app/billing/store/customers"
)

// fixedRandom returns the given values in order.
func fixedRandom(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i]
		i++
		return v
	}
}

func chargeInvoice() model.Invoice {
	return model.Invoice{
		ID:         1,
		CustomerID: 23,
		Amount: model.Money{
			Value:    decimal.RequireFromString("120.50"),
			Currency: "EUR",
		},
		Status: model.InvoiceStatusPending,
	}
}

func TestSimulatedProvider_SuccessfulCharge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustomers := customer_store.NewMockQuerier(ctrl)
	mockCustomers.EXPECT().
		GetCustomer(gomock.Any(), int32(23)).
		Return(customers.Customer{ID: 23, Currency: "EUR"}, nil).
		Times(1)

	underTest := NewSimulatedProvider(mockCustomers, 0.1, 0.05)
	underTest.random = fixedRandom(0.9, 0.9) // no network failure, no decline

	charged, err := underTest.Charge(context.Background(), chargeInvoice())
	assert.NoError(t, err)
	assert.True(t, charged)
}

func TestSimulatedProvider_DeclinedCharge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustomers := customer_store.NewMockQuerier(ctrl)
	mockCustomers.EXPECT().
		GetCustomer(gomock.Any(), int32(23)).
		Return(customers.Customer{ID: 23, Currency: "EUR"}, nil).
		Times(1)

	underTest := NewSimulatedProvider(mockCustomers, 0.1, 0.05)
	underTest.random = fixedRandom(0.9, 0.05) // second draw lands under declineRate

	charged, err := underTest.Charge(context.Background(), chargeInvoice())
	assert.NoError(t, err)
	assert.False(t, charged)
}

func TestSimulatedProvider_NetworkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The failure hits before any customer lookup.
	mockCustomers := customer_store.NewMockQuerier(ctrl)

	underTest := NewSimulatedProvider(mockCustomers, 0.1, 0.05)
	underTest.random = fixedRandom(0.01)

	charged, err := underTest.Charge(context.Background(), chargeInvoice())
	assert.False(t, charged)

	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, CodeNetwork, pe.Code)
	assert.Equal(t, int32(1), pe.InvoiceID)
	assert.Equal(t, int32(23), pe.CustomerID)
}

func TestSimulatedProvider_CustomerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustomers := customer_store.NewMockQuerier(ctrl)
	mockCustomers.EXPECT().
		GetCustomer(gomock.Any(), int32(23)).
		Return(customers.Customer{}, pgx.ErrNoRows).
		Times(1)

	underTest := NewSimulatedProvider(mockCustomers, 0.1, 0.05)
	underTest.random = fixedRandom(0.9)

	charged, err := underTest.Charge(context.Background(), chargeInvoice())
	assert.False(t, charged)

	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, CodeCustomerNotFound, pe.Code)
}

func TestSimulatedProvider_CurrencyMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustomers := customer_store.NewMockQuerier(ctrl)
	mockCustomers.EXPECT().
		GetCustomer(gomock.Any(), int32(23)).
		Return(customers.Customer{ID: 23, Currency: "USD"}, nil).
		Times(1)

	underTest := NewSimulatedProvider(mockCustomers, 0.1, 0.05)
	underTest.random = fixedRandom(0.9)

	charged, err := underTest.Charge(context.Background(), chargeInvoice())
	assert.False(t, charged)

	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, CodeCurrencyMismatch, pe.Code)
}

func TestSimulatedProvider_LookupFailureIsNotClassified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustomers := customer_store.NewMockQuerier(ctrl)
	mockCustomers.EXPECT().
		GetCustomer(gomock.Any(), int32(23)).
		Return(customers.Customer{}, errors.New("connection refused")).
		Times(1)

	underTest := NewSimulatedProvider(mockCustomers, 0.1, 0.05)
	underTest.random = fixedRandom(0.9)

	charged, err := underTest.Charge(context.Background(), chargeInvoice())
	assert.False(t, charged)
	require.Error(t, err)

	// Infrastructure faults stay plain errors; Classify treats them as
	// unclassified and the invoice lands in RETRY.
	var pe *Error
	assert.False(t, errors.As(err, &pe))
	assert.Equal(t, CodeUnclassified, Classify(err))
}
