package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
)

// TriggerEmitter publishes a billing trigger for the given backlog status and
// returns the channel message id.
type TriggerEmitter interface {
	EmitTrigger(ctx context.Context, status string) (string, error)
}

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	Triggers TriggerEmitter
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(triggers TriggerEmitter) {
	activityDeps = &ActivityDependencies{
		Triggers: triggers,
	}
}

// EmitTriggerActivity publishes a billing trigger onto the trigger channel
func EmitTriggerActivity(ctx context.Context, status string) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing emit trigger activity", "status", status)

	if activityDeps == nil || activityDeps.Triggers == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	msgID, err := activityDeps.Triggers.EmitTrigger(ctx, status)
	if err != nil {
		logger.Error("Failed to emit billing trigger", "status", status, "error", err)
		return err
	}

	logger.Info("Successfully emitted billing trigger", "status", status, "messageID", msgID)
	return nil
}
