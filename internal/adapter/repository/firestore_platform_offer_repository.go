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

type firestorePlatformOfferRepository struct {
	client *firestore.Client
}

func NewFirestorePlatformOfferRepository(client *firestore.Client) repository.PlatformOfferRepository {
	return &firestorePlatformOfferRepository{client: client}
}

func (r *firestorePlatformOfferRepository) Create(ctx context.Context, offer *entity.PlatformOffer) error {
	if offer.ID == "" {
		doc := r.client.Collection("platformOffers").NewDoc()
		offer.ID = doc.ID
	}

	now := time.Now()
	if offer.CreatedAt.IsZero() {
		offer.CreatedAt = now
	}
	offer.UpdatedAt = now

	_, err := r.client.Collection("platformOffers").Doc(offer.ID).Set(ctx, offer)
	if err != nil {
		return errors.Internal("Failed to create platform offer", err)
	}

	return nil
}

func (r *firestorePlatformOfferRepository) GetByID(ctx context.Context, id string) (*entity.PlatformOffer, error) {
	doc, err := r.client.Collection("platformOffers").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Platform offer", err)
		}
		return nil, errors.Internal("Failed to get platform offer", err)
	}

	var offer entity.PlatformOffer
	if err := doc.DataTo(&offer); err != nil {
		return nil, errors.Internal("Failed to parse platform offer data", err)
	}

	return &offer, nil
}

func (r *firestorePlatformOfferRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.PlatformOffer, int64, error) {
	query := r.client.Collection("platformOffers").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count platform offers", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var offers []*entity.PlatformOffer

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate platform offers", err)
		}
		var offer entity.PlatformOffer
		if err := doc.DataTo(&offer); err != nil {
			return nil, 0, errors.Internal("Failed to parse platform offer data", err)
		}
		offers = append(offers, &offer)
	}

	return offers, total, nil
}

func (r *firestorePlatformOfferRepository) Update(ctx context.Context, offer *entity.PlatformOffer) error {
	offer.UpdatedAt = time.Now()

	_, err := r.client.Collection("platformOffers").Doc(offer.ID).Set(ctx, offer)
	if err != nil {
		return errors.Internal("Failed to update platform offer", err)
	}

	return nil
}

func (r *firestorePlatformOfferRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("platformOffers").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete platform offer", err)
	}

	return nil
}

func (r *firestorePlatformOfferRepository) SetStatus(ctx context.Context, id string, status string) error {
	_, err := r.client.Collection("platformOffers").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to update platform offer status", err)
	}

	return nil
}
