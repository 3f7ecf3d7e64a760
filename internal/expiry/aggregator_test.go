package expiry

import (
	"testing"

	"github.com/foodtrackerapp/expiry-notifier/internal/store"
)

func TestAggregatorPreservesFirstSeenOrder(t *testing.T) {
	t1 := store.PushTarget{ID: "T1", Token: "tok1"}
	t2 := store.PushTarget{ID: "T2", Token: "tok2"}

	agg := newAggregator()
	agg.add(t1, "Milk")
	agg.add(t2, "Milk")
	agg.add(t1, "Eggs")

	buckets := agg.all()
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	if buckets[0].TargetID != "T1" || buckets[1].TargetID != "T2" {
		t.Errorf("bucket order = %q, %q; want T1, T2", buckets[0].TargetID, buckets[1].TargetID)
	}
	if len(buckets[0].Items) != 2 || buckets[0].Items[0] != "Milk" || buckets[0].Items[1] != "Eggs" {
		t.Errorf("T1 items = %v, want [Milk Eggs]", buckets[0].Items)
	}
	if len(buckets[1].Items) != 1 || buckets[1].Items[0] != "Milk" {
		t.Errorf("T2 items = %v, want [Milk]", buckets[1].Items)
	}
}

func TestAggregatorKeepsDuplicateNames(t *testing.T) {
	// The same item name expiring in two households that share a target is
	// two entries, not one.
	target := store.PushTarget{ID: "T1", Token: "tok1"}

	agg := newAggregator()
	agg.add(target, "Milk")
	agg.add(target, "Milk")

	buckets := agg.all()
	if len(buckets) != 1 {
		t.Fatalf("got %d buckets, want 1", len(buckets))
	}
	if len(buckets[0].Items) != 2 {
		t.Errorf("got %d items, want 2 (duplicates kept)", len(buckets[0].Items))
	}
}
