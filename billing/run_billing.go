package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type RunBillingRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING RETRY"`
}

type RunBillingResponse struct {
	Status    string `json:"status"`
	MessageID string `json:"message_id"`
}

//encore:api public path=/v1/billing/runs method=POST
func (s *Billing) RunBilling(ctx context.Context, req *RunBillingRequest) (*RunBillingResponse, error) {
	// The trigger goes through the channel rather than straight into the
	// orchestrator so ad hoc operator sweeps and scheduled runs share one
	// code path.
	msgID, err := s.triggerTopic.Publish(ctx, &TriggerMessage{Status: req.Status})
	if err != nil {
		rlog.Error("failed to publish billing trigger", "status", req.Status, "error", err)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to publish billing trigger"}
	}

	rlog.Info("published billing trigger", "status", req.Status, "message_id", msgID)
	return &RunBillingResponse{
		Status:    req.Status,
		MessageID: msgID,
	}, nil
}

// Validate implements validation for RunBillingRequest using go-playground/validator
func (r *RunBillingRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
