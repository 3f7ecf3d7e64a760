package store

import (
	"cloud.google.com/go/firestore"

	"github.com/foodtrackerapp/expiry-notifier/internal/logger"
)

// Store reads items, households and push targets from Firestore.
type Store struct {
	client     *firestore.Client
	logger     *logger.Logger
	items      string
	households string
	targets    string
}

// New creates a Store over the given Firestore client and collection names.
func New(client *firestore.Client, logger *logger.Logger, itemCollection, householdCollection, targetCollection string) *Store {
	return &Store{
		client:     client,
		logger:     logger,
		items:      itemCollection,
		households: householdCollection,
		targets:    targetCollection,
	}
}
