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

type firestoreInquiryRepository struct {
	client *firestore.Client
}

func NewFirestoreInquiryRepository(client *firestore.Client) repository.InquiryRepository {
	return &firestoreInquiryRepository{client: client}
}

func (r *firestoreInquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	if inquiry.ID == "" {
		doc := r.client.Collection("inquiries").NewDoc()
		inquiry.ID = doc.ID
	}

	now := time.Now()
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = now
	}
	inquiry.UpdatedAt = now

	_, err := r.client.Collection("inquiries").Doc(inquiry.ID).Set(ctx, inquiry)
	if err != nil {
		return errors.Internal("Failed to create inquiry", err)
	}

	return nil
}

func (r *firestoreInquiryRepository) GetByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	doc, err := r.client.Collection("inquiries").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Inquiry", err)
		}
		return nil, errors.Internal("Failed to get inquiry", err)
	}

	var inquiry entity.Inquiry
	if err := doc.DataTo(&inquiry); err != nil {
		return nil, errors.Internal("Failed to parse inquiry data", err)
	}

	return &inquiry, nil
}

func (r *firestoreInquiryRepository) List(ctx context.Context, handled *bool, limit, offset int) ([]*entity.Inquiry, int64, error) {
	query := r.client.Collection("inquiries").Query
	if handled != nil {
		query = query.Where("handled", "==", *handled)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count inquiries", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var inquiries []*entity.Inquiry

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate inquiries", err)
		}
		var inquiry entity.Inquiry
		if err := doc.DataTo(&inquiry); err != nil {
			return nil, 0, errors.Internal("Failed to parse inquiry data", err)
		}
		inquiries = append(inquiries, &inquiry)
	}

	return inquiries, total, nil
}

func (r *firestoreInquiryRepository) MarkHandled(ctx context.Context, id string) error {
	_, err := r.client.Collection("inquiries").Doc(id).Update(ctx, []firestore.Update{
		{Path: "handled", Value: true},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to mark inquiry handled", err)
	}

	return nil
}
