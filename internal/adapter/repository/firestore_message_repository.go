package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"listed/internal/domain/entity"
	"listed/internal/domain/repository"
	"listed/pkg/errors"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{client: client}
}

// messageDoc adds the query-only fields Firestore needs: a stable key for the
// pair of participants and an array for array-contains lookups.
type messageDoc struct {
	entity.DirectMessage
	ConversationKey string   `firestore:"conversationKey"`
	Participants    []string `firestore:"participants"`
}

func conversationKey(userA, userB string) string {
	pair := []string{userA, userB}
	sort.Strings(pair)
	return strings.Join(pair, "_")
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.DirectMessage) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	doc := messageDoc{
		DirectMessage:   *message,
		ConversationKey: conversationKey(message.SenderID, message.RecipientID),
		Participants:    []string{message.SenderID, message.RecipientID},
	}

	_, err := r.client.Collection("directMessages").Doc(message.ID).Set(ctx, doc)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

func (r *firestoreMessageRepository) ListConversation(ctx context.Context, userA, userB string, limit, offset int) ([]*entity.DirectMessage, int64, error) {
	query := r.client.Collection("directMessages").Query.
		Where("conversationKey", "==", conversationKey(userA, userB)).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query, limit, offset)
}

func (r *firestoreMessageRepository) ListForUser(ctx context.Context, userID string, limit, offset int) ([]*entity.DirectMessage, int64, error) {
	query := r.client.Collection("directMessages").Query.
		Where("participants", "array-contains", userID).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query, limit, offset)
}

func (r *firestoreMessageRepository) collect(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.DirectMessage, int64, error) {
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count messages", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var messages []*entity.DirectMessage

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate messages", err)
		}
		var m messageDoc
		if err := doc.DataTo(&m); err != nil {
			return nil, 0, errors.Internal("Failed to parse message data", err)
		}
		message := m.DirectMessage
		messages = append(messages, &message)
	}

	return messages, total, nil
}
