package logger

import (
	"context"

	"github.com/google/uuid"
)

// WithRunID adds a workflow run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, ContextKeyRunID, runID)
}

// WithHouseholdID adds a household ID to the context.
func WithHouseholdID(ctx context.Context, householdID string) context.Context {
	return context.WithValue(ctx, ContextKeyHouseholdID, householdID)
}

// WithOperation adds an operation name to the context.
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, ContextKeyOperation, operation)
}

// GenerateRunID generates a new run ID.
func GenerateRunID() string {
	runID := uuid.New()
	return runID.String()
}
