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

type firestoreSalesOfferRepository struct {
	client *firestore.Client
}

func NewFirestoreSalesOfferRepository(client *firestore.Client) repository.SalesOfferRepository {
	return &firestoreSalesOfferRepository{client: client}
}

func (r *firestoreSalesOfferRepository) Create(ctx context.Context, offer *entity.UserSalesOffer) error {
	if offer.ID == "" {
		doc := r.client.Collection("userSalesOffers").NewDoc()
		offer.ID = doc.ID
	}

	now := time.Now()
	if offer.CreatedAt.IsZero() {
		offer.CreatedAt = now
	}
	offer.UpdatedAt = now

	_, err := r.client.Collection("userSalesOffers").Doc(offer.ID).Set(ctx, offer)
	if err != nil {
		return errors.Internal("Failed to create sales offer", err)
	}

	return nil
}

func (r *firestoreSalesOfferRepository) GetByID(ctx context.Context, id string) (*entity.UserSalesOffer, error) {
	doc, err := r.client.Collection("userSalesOffers").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Sales offer", err)
		}
		return nil, errors.Internal("Failed to get sales offer", err)
	}

	var offer entity.UserSalesOffer
	if err := doc.DataTo(&offer); err != nil {
		return nil, errors.Internal("Failed to parse sales offer data", err)
	}

	return &offer, nil
}

func (r *firestoreSalesOfferRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.UserSalesOffer, int64, error) {
	query := r.client.Collection("userSalesOffers").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query, limit, offset)
}

func (r *firestoreSalesOfferRepository) ListByCreatorID(ctx context.Context, creatorID string, status string, limit, offset int) ([]*entity.UserSalesOffer, int64, error) {
	query := r.client.Collection("userSalesOffers").Query.Where("creatorId", "==", creatorID)
	if status != "" {
		query = query.Where("status", "==", status)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query, limit, offset)
}

func (r *firestoreSalesOfferRepository) collect(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.UserSalesOffer, int64, error) {
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count sales offers", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var offers []*entity.UserSalesOffer

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate sales offers", err)
		}
		var offer entity.UserSalesOffer
		if err := doc.DataTo(&offer); err != nil {
			return nil, 0, errors.Internal("Failed to parse sales offer data", err)
		}
		offers = append(offers, &offer)
	}

	return offers, total, nil
}

func (r *firestoreSalesOfferRepository) Update(ctx context.Context, offer *entity.UserSalesOffer) error {
	offer.UpdatedAt = time.Now()

	_, err := r.client.Collection("userSalesOffers").Doc(offer.ID).Set(ctx, offer)
	if err != nil {
		return errors.Internal("Failed to update sales offer", err)
	}

	return nil
}

func (r *firestoreSalesOfferRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("userSalesOffers").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete sales offer", err)
	}

	return nil
}

func (r *firestoreSalesOfferRepository) SetStatus(ctx context.Context, id string, status string) error {
	_, err := r.client.Collection("userSalesOffers").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to update sales offer status", err)
	}

	return nil
}

func (r *firestoreSalesOfferRepository) CountActiveByCreatorID(ctx context.Context, creatorID string) (int64, error) {
	docs, err := r.client.Collection("userSalesOffers").
		Where("creatorId", "==", creatorID).
		Where("status", "==", entity.OfferStatusActive).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count active sales offers", err)
	}

	return int64(len(docs)), nil
}
