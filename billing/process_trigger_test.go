package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/business/invoice_business"
	"encore.app/billing/mocks/publisher"
	"encore.app/billing/model"
)

func pendingInvoice(id, customerID int32) *model.Invoice {
	return &model.Invoice{
		ID:         id,
		CustomerID: customerID,
		Amount: model.Money{
			Value:    decimal.RequireFromString("99.90"),
			Currency: "EUR",
		},
		Status: model.InvoiceStatusPending,
	}
}

func TestProcessTrigger_FansOutOneMessagePerInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoices := invoice_business.NewMockBusiness(ctrl)
	mockTopic := publisher.NewMockPublisher[*InvoiceMessage](ctrl)

	backlog := []*model.Invoice{
		pendingInvoice(1, 23),
		pendingInvoice(2, 23),
		pendingInvoice(3, 42),
	}

	mockInvoices.EXPECT().
		FetchByStatus(gomock.Any(), model.InvoiceStatusPending).
		Return(backlog, nil).
		Times(1)

	var published []*InvoiceMessage
	mockTopic.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msg *InvoiceMessage) (string, error) {
			published = append(published, msg)
			return "msg-id", nil
		}).
		Times(3)

	service := &Billing{invoices: mockInvoices, invoiceTopic: mockTopic}

	err := service.ProcessTrigger(context.Background(), &TriggerMessage{Status: "PENDING"})
	assert.NoError(t, err)

	assert.Len(t, published, 3)
	assert.Equal(t, int32(1), published[0].Invoice.ID)
	assert.Equal(t, "23", published[0].CustomerID)
	assert.Equal(t, "42", published[2].CustomerID)
}

func TestProcessTrigger_EmptyBacklogPublishesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoices := invoice_business.NewMockBusiness(ctrl)
	mockTopic := publisher.NewMockPublisher[*InvoiceMessage](ctrl)

	mockInvoices.EXPECT().
		FetchByStatus(gomock.Any(), model.InvoiceStatusRetry).
		Return(nil, nil).
		Times(1)

	service := &Billing{invoices: mockInvoices, invoiceTopic: mockTopic}

	err := service.ProcessTrigger(context.Background(), &TriggerMessage{Status: "RETRY"})
	assert.NoError(t, err)
}

func TestProcessTrigger_StoreFailureDoesNotNack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoices := invoice_business.NewMockBusiness(ctrl)
	mockTopic := publisher.NewMockPublisher[*InvoiceMessage](ctrl)

	mockInvoices.EXPECT().
		FetchByStatus(gomock.Any(), model.InvoiceStatusPending).
		Return(nil, errors.New("database unavailable")).
		Times(1)

	service := &Billing{invoices: mockInvoices, invoiceTopic: mockTopic}

	// The trigger is acked regardless: the next scheduler tick regenerates it.
	err := service.ProcessTrigger(context.Background(), &TriggerMessage{Status: "PENDING"})
	assert.NoError(t, err)
}

func TestProcessTrigger_IgnoresUnprocessableStatuses(t *testing.T) {
	testCases := []string{"PAID", "FAILED", "UNKNOWN", ""}

	for _, status := range testCases {
		t.Run("status_"+status, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Neither the store nor the topic may be touched.
			mockInvoices := invoice_business.NewMockBusiness(ctrl)
			mockTopic := publisher.NewMockPublisher[*InvoiceMessage](ctrl)

			service := &Billing{invoices: mockInvoices, invoiceTopic: mockTopic}

			err := service.ProcessTrigger(context.Background(), &TriggerMessage{Status: status})
			assert.NoError(t, err)
		})
	}
}

func TestProcessTrigger_PublishFailureSkipsInvoiceAndContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoices := invoice_business.NewMockBusiness(ctrl)
	mockTopic := publisher.NewMockPublisher[*InvoiceMessage](ctrl)

	backlog := []*model.Invoice{
		pendingInvoice(1, 23),
		pendingInvoice(2, 42),
	}

	mockInvoices.EXPECT().
		FetchByStatus(gomock.Any(), model.InvoiceStatusPending).
		Return(backlog, nil).
		Times(1)

	gomock.InOrder(
		mockTopic.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			Return("", errors.New("broker unavailable")),
		mockTopic.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			Return("msg-id-2", nil),
	)

	service := &Billing{invoices: mockInvoices, invoiceTopic: mockTopic}

	err := service.ProcessTrigger(context.Background(), &TriggerMessage{Status: "PENDING"})
	assert.NoError(t, err)
}
