package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"listed/internal/domain/entity"
	"listed/internal/domain/repository"
	"listed/pkg/errors"
)

type firestoreEngagementRepository struct {
	client *firestore.Client
}

func NewFirestoreEngagementRepository(client *firestore.Client) repository.EngagementRepository {
	return &firestoreEngagementRepository{client: client}
}

func (r *firestoreEngagementRepository) parentDoc(parent entity.EntityRef) *firestore.DocumentRef {
	return r.client.Collection(parent.Collection).Doc(parent.ID)
}

func (r *firestoreEngagementRepository) IsMember(ctx context.Context, parent entity.EntityRef, kind entity.EngagementKind, userID string) (bool, error) {
	doc, err := r.parentDoc(parent).Collection(kind.SubcollectionName()).Doc(userID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, errors.Internal("Failed to check engagement membership", err)
	}

	return doc.Exists(), nil
}

func (r *firestoreEngagementRepository) AddMembers(ctx context.Context, parent entity.EntityRef, kind entity.EngagementKind, members []entity.EngagementMember) error {
	if len(members) == 0 {
		return errors.BadRequest("No engagement members to record", nil)
	}

	parentDoc := r.parentDoc(parent)
	sub := parentDoc.Collection(kind.SubcollectionName())

	// One batch: every member subdocument plus a single counter increment.
	// Firestore commits the batch all-or-nothing, so the counter can never
	// drift from the subcollection contents.
	batch := r.client.Batch()
	for i := range members {
		batch.Set(sub.Doc(members[i].UserID), members[i])
	}
	batch.Update(parentDoc, []firestore.Update{
		{Path: kind.CounterField(), Value: firestore.Increment(len(members))},
		{Path: "updatedAt", Value: time.Now()},
	})

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Internal("Failed to record engagement", err)
	}

	return nil
}

func (r *firestoreEngagementRepository) ListMembers(ctx context.Context, parent entity.EntityRef, kind entity.EngagementKind, limit, offset int) ([]*entity.EngagementMember, int64, error) {
	query := r.parentDoc(parent).Collection(kind.SubcollectionName()).
		OrderBy("timestamp", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count engagement members", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var members []*entity.EngagementMember

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate engagement members", err)
		}
		var member entity.EngagementMember
		if err := doc.DataTo(&member); err != nil {
			return nil, 0, errors.Internal("Failed to parse engagement member", err)
		}
		members = append(members, &member)
	}

	return members, total, nil
}
