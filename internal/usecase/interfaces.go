package usecase

import (
	"context"
)

// AuthClient abstracts the identity provider.
type AuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
}

// Notifier pushes a payload to a connected user, if any. Delivery is
// best-effort: offline recipients are simply not notified.
type Notifier interface {
	SendToUser(userID string, payload []byte)
}
