package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/worker"

	"encore.dev/config"
	"encore.dev/pubsub"
	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/billing/business/charge"
	"encore.app/billing/business/customer"
	"encore.app/billing/business/invoice"
	"encore.app/billing/payment"
	"encore.app/billing/store"
	"encore.app/billing/workflow"
)

var billingDB = sqldb.NewDatabase("billing", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

// BillingConfig holds the per-environment service configuration.
type BillingConfig struct {
	Schedule struct {
		// Cadence is "monthly" in production; anything else falls back to
		// the fixed Interval, which keeps local runs short.
		Cadence  config.String
		Interval config.String
	}
	Payment struct {
		DeclineRate        config.Float64
		NetworkFailureRate config.Float64
	}
}

var cfg = config.Load[*BillingConfig]()

var validate = validator.New()

//encore:service
type Billing struct {
	invoices  invoice.Business
	customers customer.Business
	charge    charge.Business

	triggerTopic pubsub.Publisher[*TriggerMessage]
	invoiceTopic pubsub.Publisher[*InvoiceMessage]

	temporal client.Client
	worker   worker.Worker
}

func initService() (*Billing, error) {
	pgxdb := sqldb.Driver[*pgxpool.Pool](billingDB)

	rlog.Info("Initializing store")
	repo := store.NewStore(pgxdb)

	provider := payment.NewSimulatedProvider(
		repo.Customers,
		cfg.Payment.DeclineRate(),
		cfg.Payment.NetworkFailureRate(),
	)

	invoiceBusiness := invoice.NewInvoiceBusiness(repo.Invoices, repo.Customers)
	customerBusiness := customer.NewCustomerBusiness(repo.Customers)
	chargeBusiness := charge.NewChargeBusiness(provider, invoiceBusiness, newTopicNotifier(Notifications))

	s := &Billing{
		invoices:     invoiceBusiness,
		customers:    customerBusiness,
		charge:       chargeBusiness,
		triggerTopic: BillingTriggers,
		invoiceTopic: Invoices,
	}

	workflow.SetActivityDependencies(s)

	if err := s.startSchedule(); err != nil {
		return nil, err
	}

	return s, nil
}

// EmitTrigger implements workflow.TriggerEmitter by publishing onto the
// trigger channel.
func (s *Billing) EmitTrigger(ctx context.Context, status string) (string, error) {
	return s.triggerTopic.Publish(ctx, &TriggerMessage{Status: status})
}

// startSchedule connects to Temporal, starts the worker, and makes sure the
// singleton billing schedule workflow is running.
func (s *Billing) startSchedule() error {
	interval, err := time.ParseDuration(cfg.Schedule.Interval())
	if err != nil {
		return fmt.Errorf("parse schedule interval: %w", err)
	}

	c, err := client.Dial(client.Options{})
	if err != nil {
		return fmt.Errorf("dial temporal: %w", err)
	}

	w := worker.New(c, workflow.TaskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.BillingSchedule)
	w.RegisterActivity(workflow.EmitTriggerActivity)
	if err := w.Start(); err != nil {
		c.Close()
		return fmt.Errorf("start temporal worker: %w", err)
	}

	s.temporal = c
	s.worker = w

	options := client.StartWorkflowOptions{
		ID:        workflow.ScheduleWorkflowID,
		TaskQueue: workflow.TaskQueue,
	}
	params := workflow.BillingScheduleParams{
		Cadence:  cfg.Schedule.Cadence(),
		Interval: interval,
	}

	if _, err := c.ExecuteWorkflow(context.Background(), options, workflow.BillingSchedule, params); err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("billing schedule workflow already running", "workflow_id", workflow.ScheduleWorkflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflow.ScheduleWorkflowID, err)
	}

	rlog.Info("started billing schedule workflow", "workflow_id", workflow.ScheduleWorkflowID, "cadence", params.Cadence)
	return nil
}

func (s *Billing) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}
