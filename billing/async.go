package billing

import (
	"context"
	"time"

	"encore.dev/rlog"
)

const asyncTimeout = 5 * time.Second

// runAsync is an indirection over safeAsync so tests can override
// asynchronous behavior and execute operations synchronously.
// Production code uses safeAsync (goroutine) by default.
var runAsync = safeAsync

// safeAsync runs a function in a goroutine with a timeout and structured
// error logging, for fire-and-forget work whose failure must never reach the
// caller (notification publishes in particular).
func safeAsync(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("async operation failed", "op", op, "error", err)
		} else {
			rlog.Debug("async operation succeeded", "op", op)
		}
	}()
}
