package expiry

import (
	"context"

	"github.com/foodtrackerapp/expiry-notifier/internal/push"
	"github.com/foodtrackerapp/expiry-notifier/internal/store"
)

// ItemSource lists the items expiring on a given YYYY-MM-DD date.
type ItemSource interface {
	ListExpiringItems(ctx context.Context, date string) ([]store.ExpiringItem, error)
}

// HouseholdSource fetches household membership by household ID.
type HouseholdSource interface {
	GetHousehold(ctx context.Context, id string) (store.Household, error)
}

// TargetSource lists a user's push-capable notification targets.
type TargetSource interface {
	ListPushTargets(ctx context.Context, userID string) ([]store.PushTarget, error)
}

// Sender submits push notifications to device tokens.
type Sender interface {
	Send(ctx context.Context, token string, n push.Notification) (string, error)
	SendAll(ctx context.Context, tokens []string, n push.Notification) (int, int, error)
}

// Bucket accumulates the expiring item names destined for one push target.
// Items keeps insertion order; a name appearing in two households that share
// the target appears twice.
type Bucket struct {
	TargetID string   `json:"target"`
	Token    string   `json:"-"`
	Items    []string `json:"items"`
}

// RunSummary reports what a single aggregated run fetched and dispatched.
// It is the trigger response payload.
type RunSummary struct {
	Date          string    `json:"date"`
	ItemsFetched  int       `json:"items_fetched"`
	Households    int       `json:"households"`
	Notifications []*Bucket `json:"notifications"`
	Sent          int       `json:"sent"`
	Failed        int       `json:"failed"`
	SkippedItems  int       `json:"skipped_items"`
	Error         string    `json:"error,omitempty"`
}

// NaiveSummary reports what a single legacy per-item run dispatched.
type NaiveSummary struct {
	Date         string `json:"date"`
	ItemsFetched int    `json:"items_fetched"`
	Sent         int    `json:"sent"`
	Failed       int    `json:"failed"`
	SkippedItems int    `json:"skipped_items"`
	Error        string `json:"error,omitempty"`
}
