package billing

import (
	"context"

	"encore.dev/rlog"

	"encore.app/billing/model"
)

type ListCustomersRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

type ListCustomersResponse struct {
	Customers  []model.Customer `json:"customers"`
	TotalCount int64            `json:"total_count"`
	Limit      int              `json:"limit"`
	Offset     int              `json:"offset"`
}

//encore:api public path=/v1/customers method=GET
func (s *Billing) ListCustomers(ctx context.Context, req *ListCustomersRequest) (*ListCustomersResponse, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	customers, totalCount, err := s.customers.ListCustomers(ctx, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to list customers", "error", err)
		return nil, err
	}

	response := &ListCustomersResponse{
		Customers:  make([]model.Customer, len(customers)),
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}
	for i, c := range customers {
		response.Customers[i] = *c
	}

	return response, nil
}
