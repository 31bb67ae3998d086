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

type firestoreComplaintRepository struct {
	client *firestore.Client
}

func NewFirestoreComplaintRepository(client *firestore.Client) repository.ComplaintRepository {
	return &firestoreComplaintRepository{client: client}
}

func (r *firestoreComplaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	if complaint.ID == "" {
		doc := r.client.Collection("complaints").NewDoc()
		complaint.ID = doc.ID
	}

	now := time.Now()
	if complaint.CreatedAt.IsZero() {
		complaint.CreatedAt = now
	}
	complaint.UpdatedAt = now

	if complaint.AdminNotes == nil {
		complaint.AdminNotes = []entity.AdminNote{}
	}

	_, err := r.client.Collection("complaints").Doc(complaint.ID).Set(ctx, complaint)
	if err != nil {
		return errors.Internal("Failed to create complaint", err)
	}

	return nil
}

func (r *firestoreComplaintRepository) GetByID(ctx context.Context, id string) (*entity.Complaint, error) {
	doc, err := r.client.Collection("complaints").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Complaint", err)
		}
		return nil, errors.Internal("Failed to get complaint", err)
	}

	var complaint entity.Complaint
	if err := doc.DataTo(&complaint); err != nil {
		return nil, errors.Internal("Failed to parse complaint data", err)
	}

	return &complaint, nil
}

func (r *firestoreComplaintRepository) List(ctx context.Context, status string, limit, offset int) ([]*entity.Complaint, int64, error) {
	query := r.client.Collection("complaints").Query
	if status != "" {
		query = query.Where("status", "==", status)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query, limit, offset)
}

func (r *firestoreComplaintRepository) ListByComplainantUID(ctx context.Context, uid string, limit, offset int) ([]*entity.Complaint, int64, error) {
	query := r.client.Collection("complaints").Query.
		Where("complainantUid", "==", uid).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query, limit, offset)
}

func (r *firestoreComplaintRepository) collect(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.Complaint, int64, error) {
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count complaints", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var complaints []*entity.Complaint

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate complaints", err)
		}
		var complaint entity.Complaint
		if err := doc.DataTo(&complaint); err != nil {
			return nil, 0, errors.Internal("Failed to parse complaint data", err)
		}
		complaints = append(complaints, &complaint)
	}

	return complaints, total, nil
}

func (r *firestoreComplaintRepository) SetStatus(ctx context.Context, id string, status string, note *entity.AdminNote) error {
	updates := []firestore.Update{
		{Path: "status", Value: status},
		{Path: "updatedAt", Value: time.Now()},
	}
	if note != nil {
		// ArrayUnion appends server-side, so two admins writing notes at the
		// same time cannot overwrite each other's entry.
		updates = append(updates, firestore.Update{
			Path:  "adminNotes",
			Value: firestore.ArrayUnion(*note),
		})
	}

	_, err := r.client.Collection("complaints").Doc(id).Update(ctx, updates)
	if err != nil {
		return errors.Internal("Failed to update complaint", err)
	}

	return nil
}
