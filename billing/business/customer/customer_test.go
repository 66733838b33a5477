package customer

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/mocks/store/customer_store"
	"encore.app/billing/store/customers"
)

func TestCreateCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustomers := customer_store.NewMockQuerier(ctrl)
	mockCustomers.EXPECT().
		CreateCustomer(gomock.Any(), "EUR").
		Return(customers.Customer{ID: 23, Currency: "EUR"}, nil).
		Times(1)

	underTest := NewCustomerBusiness(mockCustomers)

	result, err := underTest.CreateCustomer(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, int32(23), result.ID)
	assert.Equal(t, "EUR", result.Currency)
}

func TestCreateCustomer_InsertFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustomers := customer_store.NewMockQuerier(ctrl)
	mockCustomers.EXPECT().
		CreateCustomer(gomock.Any(), "EUR").
		Return(customers.Customer{}, errors.New("connection reset")).
		Times(1)

	underTest := NewCustomerBusiness(mockCustomers)

	result, err := underTest.CreateCustomer(context.Background(), "EUR")
	assert.Nil(t, result)

	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.Internal, e.Code)
}

func TestGetCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustomers := customer_store.NewMockQuerier(ctrl)
	mockCustomers.EXPECT().
		GetCustomer(gomock.Any(), int32(23)).
		Return(customers.Customer{ID: 23, Currency: "DKK"}, nil).
		Times(1)

	underTest := NewCustomerBusiness(mockCustomers)

	result, err := underTest.GetCustomer(context.Background(), 23)
	require.NoError(t, err)
	assert.Equal(t, int32(23), result.ID)
	assert.Equal(t, "DKK", result.Currency)
}

func TestGetCustomer_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustomers := customer_store.NewMockQuerier(ctrl)
	mockCustomers.EXPECT().
		GetCustomer(gomock.Any(), int32(404)).
		Return(customers.Customer{}, pgx.ErrNoRows).
		Times(1)

	underTest := NewCustomerBusiness(mockCustomers)

	result, err := underTest.GetCustomer(context.Background(), 404)
	assert.Nil(t, result)

	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.NotFound, e.Code)
}

func TestListCustomers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustomers := customer_store.NewMockQuerier(ctrl)
	mockCustomers.EXPECT().
		ListCustomers(gomock.Any(), customers.ListCustomersParams{Limit: 2, Offset: 0}).
		Return([]customers.Customer{
			{ID: 1, Currency: "EUR"},
			{ID: 2, Currency: "USD"},
		}, nil).
		Times(1)
	mockCustomers.EXPECT().
		CountCustomers(gomock.Any()).
		Return(int64(5), nil).
		Times(1)

	underTest := NewCustomerBusiness(mockCustomers)

	result, total, err := underTest.ListCustomers(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, "USD", result[1].Currency)
}
