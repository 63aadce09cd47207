package domain

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NotificationService relays push notifications to the provider, either to
// one explicit device or fanned out to every user holding a role.
type NotificationService struct {
	push   PushSender
	users  UserStore
	logger *zap.Logger
}

func NewNotificationService(push PushSender, users UserStore, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		push:   push,
		users:  users,
		logger: logger,
	}
}

// SendToToken sends one notification to one device and returns the
// provider's message id. Token validity is the provider's call; a bad token
// comes back as a provider error, not a local rejection.
func (s *NotificationService) SendToToken(ctx context.Context, req NotificationRequest) (string, error) {
	id, err := s.push.Send(ctx, req.Token, req.Title, req.Body)
	if err != nil {
		return "", err
	}

	s.logger.Info("push notification sent",
		zap.String("message_id", id),
		zap.String("title", req.Title),
	)
	return id, nil
}

// SendToRole queries the user store for every record with the given role,
// collects their device tokens, and issues one multicast call for the whole
// set. Records without a token are skipped. Returns the provider's count of
// successful deliveries, or ErrNoRecipients when no token was collected.
func (s *NotificationService) SendToRole(ctx context.Context, req RoleNotificationRequest) (int, error) {
	users, err := s.users.UsersByRole(ctx, req.Role)
	if err != nil {
		return 0, fmt.Errorf("query users by role %q: %w", req.Role, err)
	}

	tokens := make([]string, 0, len(users))
	for _, u := range users {
		if u.Token != "" {
			tokens = append(tokens, u.Token)
		}
	}

	if len(tokens) == 0 {
		return 0, ErrNoRecipients
	}

	result, err := s.push.SendMulticast(ctx, tokens, req.Title, req.Body)
	if err != nil {
		return 0, err
	}

	s.logger.Info("role fan-out completed",
		zap.String("role", req.Role),
		zap.Int("tokens", len(tokens)),
		zap.Int("success", result.SuccessCount),
		zap.Int("failure", result.FailureCount),
	)
	return result.SuccessCount, nil
}
