package store

import (
	"context"
	"fmt"
	"log/slog"
)

// ListExpiringItems returns the items whose expiry field equals the given
// YYYY-MM-DD date, in query order, reading only the fields the notifier needs.
// Results are deduplicated by document ID, keeping the first occurrence.
func (s *Store) ListExpiringItems(ctx context.Context, date string) ([]ExpiringItem, error) {
	log := s.logger.WithContext(ctx).WithComponent("store")

	query := s.client.Collection(s.items).
		Where("expiry", "==", date).
		Select("name", "householdId", "expiry")

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring items: %w", err)
	}

	items := make([]ExpiringItem, 0, len(docs))
	for _, doc := range docs {
		var item ExpiringItem
		if err := doc.DataTo(&item); err != nil {
			log.Warn("skipping malformed item document",
				slog.String("doc_id", doc.Ref.ID),
				slog.String("error", err.Error()))
			continue
		}
		item.ID = doc.Ref.ID
		items = append(items, item)
	}
	items = DedupeByID(items)

	log.Info("fetched expiring items",
		slog.String("date", date),
		slog.Int("count", len(items)))

	return items, nil
}

// DedupeByID removes items repeating an earlier document ID, keeping the
// first occurrence in query order.
func DedupeByID(items []ExpiringItem) []ExpiringItem {
	seen := make(map[string]bool, len(items))
	unique := make([]ExpiringItem, 0, len(items))
	for _, item := range items {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		unique = append(unique, item)
	}
	return unique
}
