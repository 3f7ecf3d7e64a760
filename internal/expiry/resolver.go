package expiry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/foodtrackerapp/expiry-notifier/internal/logger"
	"github.com/foodtrackerapp/expiry-notifier/internal/store"
)

// Resolver maps a household to the deduplicated set of push targets held by
// its users. Results are memoized by household ID for the resolver's
// lifetime, so a household queried for several expiring items triggers the
// household/user/target lookup chain at most once per run.
type Resolver struct {
	households HouseholdSource
	targets    TargetSource
	logger     *logger.Logger
	memo       map[string][]store.PushTarget
}

// NewResolver creates a resolver with an empty memo. Workflows create one
// per run; the memo must not outlive a run.
func NewResolver(households HouseholdSource, targets TargetSource, logger *logger.Logger) *Resolver {
	return &Resolver{
		households: households,
		targets:    targets,
		logger:     logger,
		memo:       make(map[string][]store.PushTarget),
	}
}

// Resolve returns the household's push targets, deduplicated by target ID in
// first-seen order across the household's user list. Empty user entries are
// skipped individually, and a target lookup failure for one user does not
// prevent resolution for the household's remaining users. Only a failed
// household fetch is an error; lookup failures downgrade to warnings.
func (r *Resolver) Resolve(ctx context.Context, householdID string) ([]store.PushTarget, error) {
	ctx = logger.WithHouseholdID(ctx, householdID)
	log := r.logger.WithContext(ctx).WithComponent("target-resolver")

	if targets, ok := r.memo[householdID]; ok {
		log.Debug("household targets already resolved")
		return targets, nil
	}

	household, err := r.households.GetHousehold(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("resolving household %s: %w", householdID, err)
	}

	log.Info("resolving push targets",
		slog.Int("users", len(household.Users)))

	seen := make(map[string]bool)
	resolved := []store.PushTarget{}
	for _, userID := range household.Users {
		if userID == "" {
			log.Warn("skipping empty user entry")
			continue
		}

		targets, err := r.targets.ListPushTargets(ctx, userID)
		if err != nil {
			log.Warn("failed to list push targets for user",
				slog.String("user_id", userID),
				slog.String("error", err.Error()))
			continue
		}

		for _, target := range targets {
			if seen[target.ID] {
				continue
			}
			seen[target.ID] = true
			resolved = append(resolved, target)
		}
	}

	r.memo[householdID] = resolved

	log.Info("resolved push targets",
		slog.Int("target_count", len(resolved)))

	return resolved, nil
}
