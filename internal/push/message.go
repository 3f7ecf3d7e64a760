package push

import (
	"fmt"
	"time"
)

const (
	// SummaryTitle is the notification title for aggregated expiry summaries.
	SummaryTitle = "Food Tracker"
	// ItemTitle is the notification title for single-item expiry alerts.
	ItemTitle = "Your food is expiring soon!"
)

// SummaryBody formats the single-line body of an aggregated expiry
// notification from the bucket's item names.
func SummaryBody(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%s is expiring tomorrow!", items[0])
	case 2:
		return fmt.Sprintf("%s and one other item is expiring tomorrow!", items[0])
	default:
		return fmt.Sprintf("%s and %d other items are expiring tomorrow!", items[0], len(items)-1)
	}
}

// ItemBody formats the body of a single-item alert, with the expiry date in
// en-GB day-first form. An unparseable expiry falls back to the raw value.
func ItemBody(name, expiry string) string {
	t, err := time.Parse("2006-01-02", expiry)
	if err != nil {
		return fmt.Sprintf("%s is expiring on %s", name, expiry)
	}
	return fmt.Sprintf("%s is expiring on %s", name, t.Format("02/01/2006"))
}
