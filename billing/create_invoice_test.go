package billing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/mocks/business/invoice_business"
	"encore.app/billing/model"
)

func TestCreateInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoices := invoice_business.NewMockBusiness(ctrl)

	created := pendingInvoice(7, 23)
	mockInvoices.EXPECT().
		CreateInvoice(gomock.Any(), &model.Invoice{
			CustomerID: 23,
			Amount: model.Money{
				Value:    decimal.RequireFromString("99.90"),
				Currency: "EUR",
			},
		}).
		Return(created, nil).
		Times(1)

	service := &Billing{invoices: mockInvoices}

	resp, err := service.CreateInvoice(context.Background(), &CreateInvoiceRequest{
		CustomerID: 23,
		Amount:     "99.90",
		Currency:   "EUR",
	})
	assert.NoError(t, err)
	assert.Equal(t, *created, resp.Invoice)
}

func TestCreateInvoiceRequest_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		req     CreateInvoiceRequest
		wantErr bool
	}{
		{
			name: "valid_request",
			req:  CreateInvoiceRequest{CustomerID: 23, Amount: "120.50", Currency: "EUR"},
		},
		{
			name:    "missing_customer",
			req:     CreateInvoiceRequest{Amount: "120.50", Currency: "EUR"},
			wantErr: true,
		},
		{
			name:    "malformed_amount",
			req:     CreateInvoiceRequest{CustomerID: 23, Amount: "twelve", Currency: "EUR"},
			wantErr: true,
		},
		{
			name:    "zero_amount",
			req:     CreateInvoiceRequest{CustomerID: 23, Amount: "0", Currency: "EUR"},
			wantErr: true,
		},
		{
			name:    "negative_amount",
			req:     CreateInvoiceRequest{CustomerID: 23, Amount: "-5.00", Currency: "EUR"},
			wantErr: true,
		},
		{
			name:    "currency_wrong_length",
			req:     CreateInvoiceRequest{CustomerID: 23, Amount: "120.50", Currency: "EURO"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr {
				var e *errs.Error
				assert.ErrorAs(t, err, &e)
				assert.Equal(t, errs.InvalidArgument, e.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
