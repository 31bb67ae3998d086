package repository

import (
	"context"
	"time"

	"listed/internal/domain/entity"
)

type PitchRepository interface {
	Create(ctx context.Context, pitch *entity.FundingPitch) error
	GetByID(ctx context.Context, id string) (*entity.FundingPitch, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.FundingPitch, int64, error)
	ListByCreatorID(ctx context.Context, creatorID string, limit, offset int) ([]*entity.FundingPitch, int64, error)
	Update(ctx context.Context, pitch *entity.FundingPitch) error
	Delete(ctx context.Context, id string) error

	// SetStatus writes the status field plus updatedAt; last write wins.
	SetStatus(ctx context.Context, id string, status string) error
	// SoftDelete sets isDeletedByAdmin and forces status to closed in one
	// update. Restore clears the flag and reopens the pitch.
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error

	RequestFeature(ctx context.Context, id string, proofDataURI string, requestedAt time.Time) error
	ApproveFeature(ctx context.Context, id string, endsAt time.Time) error
	// RejectFeature deletes the payment proof field and stamps updatedAt.
	RejectFeature(ctx context.Context, id string) error
}
