package billing

import (
	"encore.dev/pubsub"

	"encore.app/billing/model"
)

// TriggerMessage names which invoice backlog a billing run should re-scan.
// The status travels as its raw string so that unknown values can be logged
// and ignored instead of failing decode.
type TriggerMessage struct {
	Status string `json:"status"`
}

// InvoiceMessage carries exactly one invoice that needs charging. CustomerID
// doubles as the ordering attribute: deliveries are serialized per customer,
// never globally.
type InvoiceMessage struct {
	CustomerID string        `pubsub-attr:"customer_id" json:"customer_id"`
	Invoice    model.Invoice `json:"invoice"`
}

// NotificationMessage is the outbound payment outcome for any interested
// consumer. Best-effort only.
type NotificationMessage struct {
	CustomerID int32  `json:"customer_id"`
	InvoiceID  int32  `json:"invoice_id"`
	Text       string `json:"text"`
}

// BillingTriggers connects the scheduler (and ad hoc operator runs) to the
// billing orchestrator.
var BillingTriggers = pubsub.NewTopic[*TriggerMessage]("billing-triggers", pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
})

// Invoices fans the backlog out one invoice per message.
var Invoices = pubsub.NewTopic[*InvoiceMessage]("invoices", pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
	OrderingAttribute: "customer_id",
})

// Notifications carries payment outcome notifications.
var Notifications = pubsub.NewTopic[*NotificationMessage]("notifications", pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
})
