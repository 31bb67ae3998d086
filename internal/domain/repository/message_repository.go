package repository

import (
	"context"

	"listed/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.DirectMessage) error
	ListConversation(ctx context.Context, userA, userB string, limit, offset int) ([]*entity.DirectMessage, int64, error)
	ListForUser(ctx context.Context, userID string, limit, offset int) ([]*entity.DirectMessage, int64, error)
}
