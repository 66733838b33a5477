package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"encore.app/billing/model"
)

const (
	// TaskQueue is the Temporal task queue the billing worker listens on.
	TaskQueue = "billing"

	// ScheduleWorkflowID keeps the schedule a singleton: starting it again is
	// an AlreadyStarted no-op.
	ScheduleWorkflowID = "billing-schedule"

	// CadenceMonthly ticks at the first instant of each calendar month.
	// Any other cadence falls back to the fixed Interval.
	CadenceMonthly = "monthly"

	// cyclesPerRun bounds the workflow history before ContinueAsNew.
	cyclesPerRun = 12
)

// BillingScheduleParams configures the billing schedule workflow.
type BillingScheduleParams struct {
	Cadence  string        `json:"cadence"`
	Interval time.Duration `json:"interval"`
}

// BillingSchedule ticks indefinitely: wait for the next cycle boundary, emit
// a PENDING billing trigger, repeat. A failed emission never stops the
// schedule; the cycle is skipped and the next tick proceeds from "now", with
// no catch-up for missed cycles.
func BillingSchedule(ctx workflow.Context, params BillingScheduleParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting billing schedule", "cadence", params.Cadence, "interval", params.Interval)

	for cycle := 0; cycle < cyclesPerRun; cycle++ {
		delay := nextDelay(params, workflow.Now(ctx))
		logger.Info("Waiting for next billing cycle", "delay", delay)
		if err := workflow.Sleep(ctx, delay); err != nil {
			return err
		}

		if err := emitTrigger(ctx); err != nil {
			logger.Error("Failed to emit billing trigger, skipping cycle", "error", err)
			continue
		}
		logger.Info("Emitted billing trigger")
	}

	return workflow.NewContinueAsNewError(ctx, BillingSchedule, params)
}

// nextDelay computes how long to sleep before the next billing cycle, based
// on the workflow's deterministic clock.
func nextDelay(params BillingScheduleParams, now time.Time) time.Duration {
	if params.Cadence == CadenceMonthly {
		return UntilNextMonth(now)
	}
	return params.Interval
}

// emitTrigger executes the EmitTriggerActivity for the PENDING backlog
func emitTrigger(ctx workflow.Context) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, EmitTriggerActivity, string(model.InvoiceStatusPending)).Get(ctx, nil)
}
