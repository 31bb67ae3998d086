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

type firestorePitchRepository struct {
	client *firestore.Client
}

func NewFirestorePitchRepository(client *firestore.Client) repository.PitchRepository {
	return &firestorePitchRepository{client: client}
}

func (r *firestorePitchRepository) Create(ctx context.Context, pitch *entity.FundingPitch) error {
	if pitch.ID == "" {
		doc := r.client.Collection("fundingPitches").NewDoc()
		pitch.ID = doc.ID
	}

	now := time.Now()
	if pitch.CreatedAt.IsZero() {
		pitch.CreatedAt = now
	}
	pitch.UpdatedAt = now

	_, err := r.client.Collection("fundingPitches").Doc(pitch.ID).Set(ctx, pitch)
	if err != nil {
		return errors.Internal("Failed to create pitch", err)
	}

	return nil
}

func (r *firestorePitchRepository) GetByID(ctx context.Context, id string) (*entity.FundingPitch, error) {
	doc, err := r.client.Collection("fundingPitches").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Pitch", err)
		}
		return nil, errors.Internal("Failed to get pitch", err)
	}

	var pitch entity.FundingPitch
	if err := doc.DataTo(&pitch); err != nil {
		return nil, errors.Internal("Failed to parse pitch data", err)
	}

	return &pitch, nil
}

func (r *firestorePitchRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.FundingPitch, int64, error) {
	query := r.client.Collection("fundingPitches").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count pitches", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var pitches []*entity.FundingPitch

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate pitches", err)
		}
		var pitch entity.FundingPitch
		if err := doc.DataTo(&pitch); err != nil {
			return nil, 0, errors.Internal("Failed to parse pitch data", err)
		}
		pitches = append(pitches, &pitch)
	}

	return pitches, total, nil
}

func (r *firestorePitchRepository) ListByCreatorID(ctx context.Context, creatorID string, limit, offset int) ([]*entity.FundingPitch, int64, error) {
	return r.List(ctx, map[string]interface{}{"creatorId": creatorID}, limit, offset)
}

func (r *firestorePitchRepository) Update(ctx context.Context, pitch *entity.FundingPitch) error {
	pitch.UpdatedAt = time.Now()

	_, err := r.client.Collection("fundingPitches").Doc(pitch.ID).Set(ctx, pitch)
	if err != nil {
		return errors.Internal("Failed to update pitch", err)
	}

	return nil
}

func (r *firestorePitchRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("fundingPitches").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete pitch", err)
	}

	return nil
}

func (r *firestorePitchRepository) SetStatus(ctx context.Context, id string, status string) error {
	_, err := r.client.Collection("fundingPitches").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to update pitch status", err)
	}

	return nil
}

func (r *firestorePitchRepository) SoftDelete(ctx context.Context, id string) error {
	// The flag and the forced close land in one update so the
	// deleted-implies-closed invariant cannot be observed half-applied.
	_, err := r.client.Collection("fundingPitches").Doc(id).Update(ctx, []firestore.Update{
		{Path: "isDeletedByAdmin", Value: true},
		{Path: "status", Value: entity.PitchStatusClosed},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to soft delete pitch", err)
	}

	return nil
}

func (r *firestorePitchRepository) Restore(ctx context.Context, id string) error {
	_, err := r.client.Collection("fundingPitches").Doc(id).Update(ctx, []firestore.Update{
		{Path: "isDeletedByAdmin", Value: false},
		{Path: "status", Value: entity.PitchStatusSeekingFunding},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to restore pitch", err)
	}

	return nil
}

func (r *firestorePitchRepository) RequestFeature(ctx context.Context, id string, proofDataURI string, requestedAt time.Time) error {
	_, err := r.client.Collection("fundingPitches").Doc(id).Update(ctx, []firestore.Update{
		{Path: "featureStatus", Value: entity.FeatureStatusPendingApproval},
		{Path: "featureRequestedAt", Value: requestedAt},
		{Path: "featurePaymentProofDataUri", Value: proofDataURI},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to request pitch feature", err)
	}

	return nil
}

func (r *firestorePitchRepository) ApproveFeature(ctx context.Context, id string, endsAt time.Time) error {
	// Payment proof stays in place as the audit trail.
	_, err := r.client.Collection("fundingPitches").Doc(id).Update(ctx, []firestore.Update{
		{Path: "featureStatus", Value: entity.FeatureStatusActive},
		{Path: "featureEndsAt", Value: endsAt},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to approve pitch feature", err)
	}

	return nil
}

func (r *firestorePitchRepository) RejectFeature(ctx context.Context, id string) error {
	_, err := r.client.Collection("fundingPitches").Doc(id).Update(ctx, []firestore.Update{
		{Path: "featureStatus", Value: entity.FeatureStatusRejected},
		{Path: "featurePaymentProofDataUri", Value: firestore.Delete},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to reject pitch feature", err)
	}

	return nil
}
