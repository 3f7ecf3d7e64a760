package store

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ListPushTargets retrieves a user's push-capable notification targets.
// Targets are stored at /{targetCollection}/{user_id}/ with structure:
//
//	{
//	  targets: {
//	    targetId1: {token: "fcm_token_...", providerType: "push"},
//	    targetId2: {...}
//	  }
//	}
//
// Entries whose providerType is not "push" or whose token is empty are
// filtered out. A user with no target document has no targets; that is not
// an error. Results are ordered by target ID so output is deterministic.
func (s *Store) ListPushTargets(ctx context.Context, userID string) ([]PushTarget, error) {
	log := s.logger.WithContext(ctx).WithComponent("store")

	doc, err := s.client.Collection(s.targets).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			log.Debug("no target document for user",
				slog.String("user_id", userID))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch targets for user %s: %w", userID, err)
	}

	data := doc.Data()
	targetsData, ok := data["targets"]
	if !ok {
		log.Warn("targets field not found in target document",
			slog.String("user_id", userID))
		return nil, nil
	}

	targetsMap, ok := targetsData.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("invalid targets data structure for user %s", userID)
	}

	var targets []PushTarget
	for targetID, targetData := range targetsMap {
		entry, ok := targetData.(map[string]interface{})
		if !ok {
			log.Warn("skipping invalid target entry",
				slog.String("target_id", targetID),
				slog.String("type", fmt.Sprintf("%T", targetData)))
			continue
		}

		provider, _ := entry["providerType"].(string)
		if provider != "push" {
			continue
		}

		token, ok := entry["token"].(string)
		if !ok || token == "" {
			log.Warn("skipping target entry with missing token",
				slog.String("target_id", targetID))
			continue
		}

		targets = append(targets, PushTarget{
			ID:       targetID,
			Token:    token,
			Provider: provider,
		})
	}

	sort.Slice(targets, func(i, j int) bool { return targets[i].ID < targets[j].ID })

	log.Debug("retrieved push targets",
		slog.String("user_id", userID),
		slog.Int("target_count", len(targets)))

	return targets, nil
}
