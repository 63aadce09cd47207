package fcm

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	"github.com/saboracademico/backend/internal/domain"
)

// Client wraps the Firebase Cloud Messaging client. It is safe for
// concurrent use and is shared across requests.
type Client struct {
	msgClient *messaging.Client
	logger    *zap.Logger
}

func NewClient(ctx context.Context, app *firebase.App, logger *zap.Logger) (*Client, error) {
	msgClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting messaging client: %w", err)
	}

	return &Client{
		msgClient: msgClient,
		logger:    logger,
	}, nil
}

// Send delivers one notification to one device token and returns the
// provider's message id. The token is not validated locally; the provider
// rejects bad ones.
func (c *Client) Send(ctx context.Context, token, title, body string) (string, error) {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}

	id, err := c.msgClient.Send(ctx, message)
	if err != nil {
		c.logger.Error("failed to send FCM message", zap.Error(err))
		return "", err
	}
	return id, nil
}

// SendMulticast delivers one notification to every token in a single
// provider call. The provider may partially fail per token; the aggregate
// counts are returned and per-token failures are only logged.
func (c *Client) SendMulticast(ctx context.Context, tokens []string, title, body string) (domain.MulticastResult, error) {
	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}

	br, err := c.msgClient.SendEachForMulticast(ctx, message)
	if err != nil {
		c.logger.Error("failed to send FCM multicast", zap.Int("tokens", len(tokens)), zap.Error(err))
		return domain.MulticastResult{}, err
	}

	if br.FailureCount > 0 {
		for idx, resp := range br.Responses {
			if resp.Success {
				continue
			}
			token := "unknown"
			if idx < len(tokens) {
				token = tokens[idx]
			}
			c.logger.Warn("FCM delivery failed for token",
				zap.String("token", token),
				zap.Error(resp.Error),
			)
		}
	}

	return domain.MulticastResult{
		SuccessCount: br.SuccessCount,
		FailureCount: br.FailureCount,
	}, nil
}

var _ domain.PushSender = (*Client)(nil)
