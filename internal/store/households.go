package store

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GetHousehold fetches a household document by ID, reading only its user
// list. The list keeps document order.
func (s *Store) GetHousehold(ctx context.Context, id string) (Household, error) {
	log := s.logger.WithContext(ctx).WithComponent("store")

	doc, err := s.client.Collection(s.households).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Household{}, fmt.Errorf("household %s not found", id)
		}
		return Household{}, fmt.Errorf("failed to fetch household %s: %w", id, err)
	}

	var household Household
	if err := doc.DataTo(&household); err != nil {
		return Household{}, fmt.Errorf("failed to parse household %s: %w", id, err)
	}
	household.ID = doc.Ref.ID

	log.Debug("fetched household",
		slog.String("household_id", id),
		slog.Int("users", len(household.Users)))

	return household, nil
}
