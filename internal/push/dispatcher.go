package push

import (
	"context"
	"fmt"
	"log/slog"

	"firebase.google.com/go/v4/messaging"

	"github.com/foodtrackerapp/expiry-notifier/internal/logger"
)

// Notification is one push message: a unique message ID plus the title and
// body shown on the device. The message ID travels in the FCM data payload.
type Notification struct {
	MessageID string
	Title     string
	Body      string
}

// Dispatcher sends push notifications via Firebase Cloud Messaging.
type Dispatcher struct {
	client  *messaging.Client
	logger  *logger.Logger
	enabled bool
}

// NewDispatcher creates a new push dispatcher. With enabled false every send
// becomes a logged no-op, which keeps staging runs from notifying real devices.
func NewDispatcher(client *messaging.Client, logger *logger.Logger, enabled bool) *Dispatcher {
	return &Dispatcher{
		client:  client,
		logger:  logger,
		enabled: enabled,
	}
}

// Send delivers one notification to a single device token. It returns the
// FCM message name on success.
func (d *Dispatcher) Send(ctx context.Context, token string, n Notification) (string, error) {
	log := d.logger.WithContext(ctx).WithComponent("push-dispatcher")

	if !d.enabled {
		log.Debug("push dispatch disabled, skipping",
			slog.String("message_id", n.MessageID))
		return "", nil
	}

	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: map[string]string{
			"message_id": n.MessageID,
		},
		Token: token,
	}

	response, err := d.client.Send(ctx, message)
	if err != nil {
		return "", fmt.Errorf("failed to send push %s: %w", n.MessageID, err)
	}

	log.Debug("push sent",
		slog.String("message_id", n.MessageID),
		slog.String("response", response))

	return response, nil
}

// SendAll delivers one notification to several device tokens in a single
// multicast request, returning per-token success and failure counts.
func (d *Dispatcher) SendAll(ctx context.Context, tokens []string, n Notification) (int, int, error) {
	log := d.logger.WithContext(ctx).WithComponent("push-dispatcher")

	if len(tokens) == 0 {
		return 0, 0, nil
	}

	if !d.enabled {
		log.Debug("push dispatch disabled, skipping",
			slog.String("message_id", n.MessageID),
			slog.Int("tokens", len(tokens)))
		return 0, 0, nil
	}

	message := &messaging.MulticastMessage{
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: map[string]string{
			"message_id": n.MessageID,
		},
		Tokens: tokens,
	}

	response, err := d.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, len(tokens), fmt.Errorf("failed to send multicast push %s: %w", n.MessageID, err)
	}

	if response.FailureCount > 0 {
		log.Warn("multicast push partially failed",
			slog.String("message_id", n.MessageID),
			slog.Int("successful", response.SuccessCount),
			slog.Int("failed", response.FailureCount))
	}

	return response.SuccessCount, response.FailureCount, nil
}
