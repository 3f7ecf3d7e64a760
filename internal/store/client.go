package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Client wraps the Firebase services the notifier talks to: Firestore for
// items, households and targets, and FCM for push delivery.
type Client struct {
	firestoreClient *firestore.Client
	messagingClient *messaging.Client
}

// NewClient creates a new Firebase client with Firestore and Messaging access.
// credJSON may be empty, in which case application default credentials apply.
func NewClient(ctx context.Context, projectID, credJSON string) (*Client, error) {
	config := &firebase.Config{
		ProjectID: projectID,
	}

	var opts []option.ClientOption
	if credJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credJSON)))
	}

	app, err := firebase.NewApp(ctx, config, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %v", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Messaging client: %w", err)
	}

	return &Client{
		firestoreClient: firestoreClient,
		messagingClient: messagingClient,
	}, nil
}

// Firestore returns the underlying Firestore client.
func (c *Client) Firestore() *firestore.Client {
	return c.firestoreClient
}

// Messaging returns the underlying FCM client.
func (c *Client) Messaging() *messaging.Client {
	return c.messagingClient
}

// Close closes the Firestore client. The Messaging client holds no
// connection of its own.
func (c *Client) Close() error {
	if c.firestoreClient != nil {
		return c.firestoreClient.Close()
	}
	return nil
}
