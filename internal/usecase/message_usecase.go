package usecase

import (
	"context"
	"encoding/json"

	"listed/internal/domain/entity"
	"listed/internal/domain/repository"
	"listed/pkg/errors"
	"listed/pkg/logger"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	notifier    Notifier
}

func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

func (uc *MessageUseCase) SendMessage(ctx context.Context, senderID, recipientID, content string) (*entity.DirectMessage, error) {
	if content == "" {
		return nil, errors.BadRequest("Message content is required", nil)
	}
	if senderID == recipientID {
		return nil, errors.BadRequest("Cannot message yourself", nil)
	}

	sender, err := uc.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.userRepo.GetByID(ctx, recipientID); err != nil {
		return nil, errors.BadRequest("Recipient not found", err)
	}

	message := &entity.DirectMessage{
		SenderID:    sender.ID,
		SenderName:  sender.Name,
		RecipientID: recipientID,
		Content:     content,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	// Best-effort push; the message is already durable.
	payload, err := json.Marshal(map[string]interface{}{
		"type":    "direct_message",
		"message": message,
	})
	if err != nil {
		logger.Warn("Failed to marshal message push payload: %v", err)
	} else {
		uc.notifier.SendToUser(recipientID, payload)
	}

	return message, nil
}

func (uc *MessageUseCase) ListConversation(ctx context.Context, actorID, otherID string, limit, offset int) ([]*entity.DirectMessage, int64, error) {
	return uc.messageRepo.ListConversation(ctx, actorID, otherID, limit, offset)
}

func (uc *MessageUseCase) ListMyMessages(ctx context.Context, actorID string, limit, offset int) ([]*entity.DirectMessage, int64, error) {
	return uc.messageRepo.ListForUser(ctx, actorID, limit, offset)
}
