package expiry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/foodtrackerapp/expiry-notifier/internal/logger"
	"github.com/foodtrackerapp/expiry-notifier/internal/metrics"
	"github.com/foodtrackerapp/expiry-notifier/internal/push"
)

// Workflow runs the expiry notification pipeline: fetch tomorrow's items,
// resolve household push targets, aggregate item names per target, dispatch
// one push per target. Stages run sequentially within a run; runs share no
// state with each other, so repeating a run on the same day re-sends the
// same notifications.
type Workflow struct {
	items      ItemSource
	households HouseholdSource
	targets    TargetSource
	sender     Sender
	logger     *logger.Logger

	// now is the clock used to compute "tomorrow"; overridden in tests.
	now func() time.Time
}

// NewWorkflow wires a workflow over the given sources and sender.
func NewWorkflow(items ItemSource, households HouseholdSource, targets TargetSource, sender Sender, logger *logger.Logger) *Workflow {
	return &Workflow{
		items:      items,
		households: households,
		targets:    targets,
		sender:     sender,
		logger:     logger,
		now:        time.Now,
	}
}

// tomorrow returns the next UTC calendar date formatted YYYY-MM-DD.
func (w *Workflow) tomorrow() string {
	return w.now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
}

// Run executes one aggregated notification pass and returns its summary.
// A failed item query aborts the run and is the only returned error; later
// stages isolate failures per household and per bucket so one bad lookup
// does not cancel unrelated work.
func (w *Workflow) Run(ctx context.Context) (*RunSummary, error) {
	ctx = logger.WithOperation(ctx, "aggregate-run")
	log := w.logger.WithContext(ctx).WithComponent("expiry-workflow")

	date := w.tomorrow()
	summary := &RunSummary{
		Date:          date,
		Notifications: []*Bucket{},
	}

	log.Info("fetching expiring items", slog.String("date", date))
	items, err := w.items.ListExpiringItems(ctx, date)
	if err != nil {
		err = fmt.Errorf("fetching expiring items: %w", err)
		summary.Error = err.Error()
		metrics.RunsTotal.WithLabelValues("aggregate", "error").Inc()
		return summary, err
	}
	summary.ItemsFetched = len(items)
	metrics.ItemsFetched.Add(float64(len(items)))

	resolver := NewResolver(w.households, w.targets, w.logger)
	agg := newAggregator()
	households := make(map[string]bool)

	for _, item := range items {
		households[item.HouseholdID] = true

		targets, err := resolver.Resolve(ctx, item.HouseholdID)
		if err != nil {
			log.Warn("skipping item, household unresolved",
				slog.String("item", item.Name),
				slog.String("household_id", item.HouseholdID),
				slog.String("error", err.Error()))
			summary.SkippedItems++
			metrics.ItemsSkipped.Inc()
			continue
		}
		if len(targets) == 0 {
			log.Info("no push targets for household, skipping item",
				slog.String("item", item.Name),
				slog.String("household_id", item.HouseholdID))
			summary.SkippedItems++
			metrics.ItemsSkipped.Inc()
			continue
		}

		for _, target := range targets {
			agg.add(target, item.Name)
		}
	}
	summary.Households = len(households)
	summary.Notifications = agg.all()

	for _, bucket := range summary.Notifications {
		notification := push.Notification{
			MessageID: uuid.NewString(),
			Title:     push.SummaryTitle,
			Body:      push.SummaryBody(bucket.Items),
		}

		if _, err := w.sender.Send(ctx, bucket.Token, notification); err != nil {
			log.Error("push dispatch failed",
				slog.String("target", bucket.TargetID),
				slog.String("error", err.Error()))
			summary.Failed++
			metrics.PushesFailed.WithLabelValues("aggregate").Inc()
			continue
		}
		summary.Sent++
		metrics.PushesSent.WithLabelValues("aggregate").Inc()
	}

	metrics.RunsTotal.WithLabelValues("aggregate", "ok").Inc()
	log.Info("run complete",
		slog.Int("items", summary.ItemsFetched),
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed),
		slog.Int("skipped", summary.SkippedItems))

	return summary, nil
}
