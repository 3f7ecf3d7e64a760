package expiry

import (
	"context"
	"fmt"
	"sync"

	"github.com/foodtrackerapp/expiry-notifier/internal/logger"
	"github.com/foodtrackerapp/expiry-notifier/internal/push"
	"github.com/foodtrackerapp/expiry-notifier/internal/store"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{}).WithComponent("test")
}

// mockBackend implements ItemSource, HouseholdSource and TargetSource and
// records every lookup so tests can assert on call counts.
type mockBackend struct {
	items    []store.ExpiringItem
	itemsErr error

	households   map[string]store.Household
	householdErr map[string]error

	targets    map[string][]store.PushTarget
	targetsErr map[string]error

	itemQueries      []string
	householdFetches []string
	targetLookups    []string
}

func (m *mockBackend) ListExpiringItems(ctx context.Context, date string) ([]store.ExpiringItem, error) {
	m.itemQueries = append(m.itemQueries, date)
	if m.itemsErr != nil {
		return nil, m.itemsErr
	}
	return m.items, nil
}

func (m *mockBackend) GetHousehold(ctx context.Context, id string) (store.Household, error) {
	m.householdFetches = append(m.householdFetches, id)
	if err := m.householdErr[id]; err != nil {
		return store.Household{}, err
	}
	household, ok := m.households[id]
	if !ok {
		return store.Household{}, fmt.Errorf("household %s not found", id)
	}
	return household, nil
}

func (m *mockBackend) ListPushTargets(ctx context.Context, userID string) ([]store.PushTarget, error) {
	m.targetLookups = append(m.targetLookups, userID)
	if err := m.targetsErr[userID]; err != nil {
		return nil, err
	}
	return m.targets[userID], nil
}

type sentPush struct {
	token        string
	notification push.Notification
}

type sentMulticast struct {
	tokens       []string
	notification push.Notification
}

// mockSender records dispatched notifications and can fail specific tokens.
type mockSender struct {
	mu         sync.Mutex
	sends      []sentPush
	multicasts []sentMulticast
	failTokens map[string]bool
}

func (m *mockSender) Send(ctx context.Context, token string, n push.Notification) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failTokens[token] {
		return "", fmt.Errorf("delivery refused for token %s", token)
	}
	m.sends = append(m.sends, sentPush{token: token, notification: n})
	return fmt.Sprintf("projects/test/messages/%d", len(m.sends)), nil
}

func (m *mockSender) SendAll(ctx context.Context, tokens []string, n push.Notification) (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sent, failed := 0, 0
	for _, token := range tokens {
		if m.failTokens[token] {
			failed++
			continue
		}
		sent++
	}
	m.multicasts = append(m.multicasts, sentMulticast{tokens: tokens, notification: n})
	return sent, failed, nil
}
