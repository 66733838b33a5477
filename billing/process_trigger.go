package billing

import (
	"context"
	"strconv"

	"encore.dev/pubsub"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

var _ = pubsub.NewSubscription(BillingTriggers, "process-trigger", pubsub.SubscriptionConfig[*TriggerMessage]{
	Handler: pubsub.MethodHandler((*Billing).ProcessTrigger),
})

// ProcessTrigger is the billing orchestrator: it re-scans the requested
// backlog and fans each invoice out as an individual message.
//
// The handler always returns nil, so a trigger is acknowledged on receipt
// regardless of what happens during the run. A cycle lost to a crash or a
// store failure is simply regenerated by the next scheduler tick; redelivering
// triggers would re-run whole backlogs instead.
func (s *Billing) ProcessTrigger(ctx context.Context, msg *TriggerMessage) error {
	status, err := model.ParseInvoiceStatus(msg.Status)
	if err != nil || !status.Processable() {
		rlog.Info("unable to process invoices for trigger", "status", msg.Status)
		return nil
	}

	if err := s.dispatchBacklog(ctx, status); err != nil {
		rlog.Error("billing run failed", "status", status, "error", err)
	}
	return nil
}

// dispatchBacklog queries the store for every invoice in the given status and
// publishes one message per invoice. The query and the publishes are not
// transactional with invoice state; consumers must tolerate stale and
// duplicate dispatches.
func (s *Billing) dispatchBacklog(ctx context.Context, status model.InvoiceStatus) error {
	rlog.Info("started billing run", "status", status)

	backlog, err := s.invoices.FetchByStatus(ctx, status)
	if err != nil {
		return err
	}
	rlog.Info("found invoices to process", "status", status, "count", len(backlog))

	for _, inv := range backlog {
		msgID, err := s.invoiceTopic.Publish(ctx, &InvoiceMessage{
			CustomerID: strconv.FormatInt(int64(inv.CustomerID), 10),
			Invoice:    *inv,
		})
		if err != nil {
			// Keep dispatching the rest; the skipped invoice stays in its
			// current status and is picked up by a later run.
			rlog.Error("failed to publish invoice", "invoice_id", inv.ID, "error", err)
			continue
		}
		rlog.Debug("published invoice", "invoice_id", inv.ID, "message_id", msgID)
	}

	rlog.Info("ended billing run", "status", status)
	return nil
}
