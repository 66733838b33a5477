package invoice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/store/customer_store"
	"encore.app/billing/mocks/store/invoice_store"
	"encore.app/billing/model"
	"encore.app/billing/store"
	"encore.app/billing/store/invoices"
)

func TestFetchByStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoices := invoice_store.NewMockQuerier(ctrl)
	mockCustomers := customer_store.NewMockQuerier(ctrl)

	mockInvoices.EXPECT().
		ListInvoicesByStatus(gomock.Any(), "PENDING").
		Return([]invoices.Invoice{
			{ID: 1, CustomerID: 23, Amount: store.DecimalToNumeric(decimal.RequireFromString("10.00")), Currency: "EUR", Status: "PENDING"},
			{ID: 2, CustomerID: 42, Amount: store.DecimalToNumeric(decimal.RequireFromString("20.00")), Currency: "DKK", Status: "PENDING"},
		}, nil).
		Times(1)

	underTest := NewInvoiceBusiness(mockInvoices, mockCustomers)

	result, err := underTest.FetchByStatus(context.Background(), model.InvoiceStatusPending)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int32(1), result[0].ID)
	assert.Equal(t, int32(42), result[1].CustomerID)
	assert.Equal(t, model.InvoiceStatusPending, result[1].Status)
}

func TestFetchByStatus_EmptyBacklog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoices := invoice_store.NewMockQuerier(ctrl)
	mockCustomers := customer_store.NewMockQuerier(ctrl)

	mockInvoices.EXPECT().
		ListInvoicesByStatus(gomock.Any(), "RETRY").
		Return(nil, nil).
		Times(1)

	underTest := NewInvoiceBusiness(mockInvoices, mockCustomers)

	result, err := underTest.FetchByStatus(context.Background(), model.InvoiceStatusRetry)
	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestFetchByStatus_QueryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoices := invoice_store.NewMockQuerier(ctrl)
	mockCustomers := customer_store.NewMockQuerier(ctrl)

	queryErr := errors.New("connection reset")
	mockInvoices.EXPECT().
		ListInvoicesByStatus(gomock.Any(), "PENDING").
		Return(nil, queryErr).
		Times(1)

	underTest := NewInvoiceBusiness(mockInvoices, mockCustomers)

	result, err := underTest.FetchByStatus(context.Background(), model.InvoiceStatusPending)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, queryErr)
}
