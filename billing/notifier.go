package billing

import (
	"context"
	"fmt"

	"encore.dev/pubsub"

	"encore.app/billing/model"
)

// topicNotifier publishes payment outcome notifications on the Notifications
// topic, fire-and-forget. Publish failures are logged by the async helper and
// never surface to the charge state machine.
type topicNotifier struct {
	topic pubsub.Publisher[*NotificationMessage]
}

func newTopicNotifier(topic pubsub.Publisher[*NotificationMessage]) *topicNotifier {
	return &topicNotifier{topic: topic}
}

func (n *topicNotifier) Notify(ctx context.Context, notification model.Notification) {
	runAsync(fmt.Sprintf("notify invoice %d", notification.InvoiceID), func(ctx context.Context) error {
		_, err := n.topic.Publish(ctx, &NotificationMessage{
			CustomerID: notification.CustomerID,
			InvoiceID:  notification.InvoiceID,
			Text:       notification.Text,
		})
		return err
	})
}
