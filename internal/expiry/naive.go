package expiry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/foodtrackerapp/expiry-notifier/internal/logger"
	"github.com/foodtrackerapp/expiry-notifier/internal/metrics"
	"github.com/foodtrackerapp/expiry-notifier/internal/push"
)

// RunNaive executes the legacy per-item pass: one multicast push per item to
// all of the item's household targets, no aggregation across items. The
// household memo is still shared across items within the run.
func (w *Workflow) RunNaive(ctx context.Context) (*NaiveSummary, error) {
	ctx = logger.WithOperation(ctx, "naive-run")
	log := w.logger.WithContext(ctx).WithComponent("expiry-workflow")

	date := w.tomorrow()
	summary := &NaiveSummary{Date: date}

	log.Info("fetching expiring items", slog.String("date", date))
	items, err := w.items.ListExpiringItems(ctx, date)
	if err != nil {
		err = fmt.Errorf("fetching expiring items: %w", err)
		summary.Error = err.Error()
		metrics.RunsTotal.WithLabelValues("naive", "error").Inc()
		return summary, err
	}
	summary.ItemsFetched = len(items)
	metrics.ItemsFetched.Add(float64(len(items)))

	resolver := NewResolver(w.households, w.targets, w.logger)

	for _, item := range items {
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
			summary.SkippedItems++
			metrics.ItemsSkipped.Inc()
			continue
		}

		tokens := make([]string, 0, len(targets))
		for _, target := range targets {
			tokens = append(tokens, target.Token)
		}

		notification := push.Notification{
			MessageID: uuid.NewString(),
			Title:     push.ItemTitle,
			Body:      push.ItemBody(item.Name, item.Expiry),
		}

		sent, failed, err := w.sender.SendAll(ctx, tokens, notification)
		if err != nil {
			log.Error("push dispatch failed",
				slog.String("item", item.Name),
				slog.String("error", err.Error()))
			summary.Failed += len(tokens)
			metrics.PushesFailed.WithLabelValues("naive").Add(float64(len(tokens)))
			continue
		}
		summary.Sent += sent
		summary.Failed += failed
		metrics.PushesSent.WithLabelValues("naive").Add(float64(sent))
		metrics.PushesFailed.WithLabelValues("naive").Add(float64(failed))
	}

	metrics.RunsTotal.WithLabelValues("naive", "ok").Inc()
	log.Info("naive run complete",
		slog.Int("items", summary.ItemsFetched),
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed),
		slog.Int("skipped", summary.SkippedItems))

	return summary, nil
}
