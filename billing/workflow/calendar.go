package workflow

import (
	"time"
)

// UntilNextMonth returns the duration between the given instant and the
// first instant of the next calendar month, in the instant's location.
// Taking now as a parameter keeps the computation independently testable and
// deterministic when fed workflow.Now.
func UntilNextMonth(now time.Time) time.Duration {
	firstOfNextMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	return firstOfNextMonth.Sub(now)
}
