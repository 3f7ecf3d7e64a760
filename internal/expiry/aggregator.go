package expiry

import "github.com/foodtrackerapp/expiry-notifier/internal/store"

// aggregator groups expiring item names into one bucket per push target,
// preserving first-seen target order for deterministic output.
type aggregator struct {
	order   []string
	buckets map[string]*Bucket
}

func newAggregator() *aggregator {
	return &aggregator{
		buckets: make(map[string]*Bucket),
	}
}

// add appends the item name to the target's bucket, creating the bucket on
// first encounter. Names are not deduplicated within a bucket.
func (a *aggregator) add(target store.PushTarget, itemName string) {
	bucket, ok := a.buckets[target.ID]
	if !ok {
		bucket = &Bucket{
			TargetID: target.ID,
			Token:    target.Token,
		}
		a.buckets[target.ID] = bucket
		a.order = append(a.order, target.ID)
	}
	bucket.Items = append(bucket.Items, itemName)
}

// all returns the buckets in first-seen target order.
func (a *aggregator) all() []*Bucket {
	buckets := make([]*Bucket, 0, len(a.order))
	for _, targetID := range a.order {
		buckets = append(buckets, a.buckets[targetID])
	}
	return buckets
}
