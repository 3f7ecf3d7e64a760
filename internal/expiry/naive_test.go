package expiry

import (
	"context"
	"testing"

	"github.com/foodtrackerapp/expiry-notifier/internal/store"
)

func TestRunNaiveSendsOneMulticastPerItem(t *testing.T) {
	backend := &mockBackend{
		items: []store.ExpiringItem{
			{ID: "I1", Name: "Milk", HouseholdID: "H1", Expiry: "2024-05-02"},
			{ID: "I2", Name: "Eggs", HouseholdID: "H1", Expiry: "2024-05-02"},
		},
		households: map[string]store.Household{
			"H1": {ID: "H1", Users: []string{"U1"}},
		},
		targets: map[string][]store.PushTarget{
			"U1": {{ID: "T1", Token: "tok1", Provider: "push"}, {ID: "T2", Token: "tok2", Provider: "push"}},
		},
	}
	sender := &mockSender{}
	w := testWorkflow(backend, sender, mayFirst)

	summary, err := w.RunNaive(context.Background())
	if err != nil {
		t.Fatalf("RunNaive returned error: %v", err)
	}

	if len(sender.multicasts) != 2 {
		t.Fatalf("got %d multicasts, want 2 (one per item, no aggregation)", len(sender.multicasts))
	}

	first := sender.multicasts[0]
	if len(first.tokens) != 2 {
		t.Errorf("first multicast went to %d tokens, want 2", len(first.tokens))
	}
	if first.notification.Title != "Your food is expiring soon!" {
		t.Errorf("title = %q, want the single-item alert title", first.notification.Title)
	}
	if want := "Milk is expiring on 02/05/2024"; first.notification.Body != want {
		t.Errorf("body = %q, want %q", first.notification.Body, want)
	}

	if summary.Sent != 4 {
		t.Errorf("summary.Sent = %d, want 4 (2 items x 2 tokens)", summary.Sent)
	}

	// One household fetch for both items: the memo is shared with the
	// aggregated path.
	if len(backend.householdFetches) != 1 {
		t.Errorf("got %d household fetches, want 1", len(backend.householdFetches))
	}
}

func TestRunNaiveSkipsHouseholdsWithoutTargets(t *testing.T) {
	backend := &mockBackend{
		items: []store.ExpiringItem{
			{ID: "I1", Name: "Milk", HouseholdID: "H1", Expiry: "2024-05-02"},
		},
		households: map[string]store.Household{
			"H1": {ID: "H1", Users: []string{"U1"}},
		},
	}
	sender := &mockSender{}
	w := testWorkflow(backend, sender, mayFirst)

	summary, err := w.RunNaive(context.Background())
	if err != nil {
		t.Fatalf("RunNaive returned error: %v", err)
	}
	if len(sender.multicasts) != 0 {
		t.Errorf("got %d multicasts, want 0", len(sender.multicasts))
	}
	if summary.SkippedItems != 1 {
		t.Errorf("summary.SkippedItems = %d, want 1", summary.SkippedItems)
	}
}
