package invoice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/store/customer_store"
	"encore.app/billing/mocks/store/invoice_store"
	"encore.app/billing/model"
	"encore.app/billing/store/invoices"
)

func TestUpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoices := invoice_store.NewMockQuerier(ctrl)
	mockCustomers := customer_store.NewMockQuerier(ctrl)

	mockInvoices.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), invoices.UpdateInvoiceStatusParams{ID: 1, Status: "PAID"}).
		Return(int64(1), nil).
		Times(1)

	underTest := NewInvoiceBusiness(mockInvoices, mockCustomers)

	rows, err := underTest.UpdateStatus(context.Background(), 1, model.InvoiceStatusPaid)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestUpdateStatus_VanishedInvoiceReportsZeroRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoices := invoice_store.NewMockQuerier(ctrl)
	mockCustomers := customer_store.NewMockQuerier(ctrl)

	mockInvoices.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), invoices.UpdateInvoiceStatusParams{ID: 404, Status: "RETRY"}).
		Return(int64(0), nil).
		Times(1)

	underTest := NewInvoiceBusiness(mockInvoices, mockCustomers)

	rows, err := underTest.UpdateStatus(context.Background(), 404, model.InvoiceStatusRetry)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestUpdateStatus_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoices := invoice_store.NewMockQuerier(ctrl)
	mockCustomers := customer_store.NewMockQuerier(ctrl)

	writeErr := errors.New("connection reset")
	mockInvoices.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), gomock.Any()).
		Return(int64(0), writeErr).
		Times(1)

	underTest := NewInvoiceBusiness(mockInvoices, mockCustomers)

	_, err := underTest.UpdateStatus(context.Background(), 1, model.InvoiceStatusPaid)
	assert.ErrorIs(t, err, writeErr)
}
