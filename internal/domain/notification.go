package domain

import (
	"context"
	"errors"
)

// ErrNoRecipients is returned by the role fan-out when no user with the
// requested role carries a device token. It is a client-correctable
// condition, not a provider failure.
var ErrNoRecipients = errors.New("no users with a device token for role")

// NotificationRequest addresses a single device.
type NotificationRequest struct {
	Token string `json:"token"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// RoleNotificationRequest addresses every user holding a role.
type RoleNotificationRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Role  string `json:"role"`
}

// UserRecord is the read-only projection of a user document. Only the
// fields the fan-out consumes are mapped; everything else is ignored.
type UserRecord struct {
	Role  string `firestore:"rol"`
	Token string `firestore:"token"`
}

// MulticastResult is the provider's aggregate outcome for a batched send.
type MulticastResult struct {
	SuccessCount int
	FailureCount int
}

// PushSender is the push provider as seen by the notification service.
type PushSender interface {
	// Send delivers one message to one device and returns the provider's
	// opaque message id.
	Send(ctx context.Context, token, title, body string) (string, error)
	// SendMulticast delivers one message to many devices in a single
	// provider call.
	SendMulticast(ctx context.Context, tokens []string, title, body string) (MulticastResult, error)
}

// UserStore reads user records from the external document database.
type UserStore interface {
	UsersByRole(ctx context.Context, role string) ([]UserRecord, error)
}
