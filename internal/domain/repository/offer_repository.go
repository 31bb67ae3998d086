package repository

import (
	"context"

	"listed/internal/domain/entity"
)

type PlatformOfferRepository interface {
	Create(ctx context.Context, offer *entity.PlatformOffer) error
	GetByID(ctx context.Context, id string) (*entity.PlatformOffer, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.PlatformOffer, int64, error)
	Update(ctx context.Context, offer *entity.PlatformOffer) error
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status string) error
}

type SalesOfferRepository interface {
	Create(ctx context.Context, offer *entity.UserSalesOffer) error
	GetByID(ctx context.Context, id string) (*entity.UserSalesOffer, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.UserSalesOffer, int64, error)
	ListByCreatorID(ctx context.Context, creatorID string, status string, limit, offset int) ([]*entity.UserSalesOffer, int64, error)
	Update(ctx context.Context, offer *entity.UserSalesOffer) error
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status string) error
	// CountActiveByCreatorID backs the one-active-offer-per-creator rule.
	CountActiveByCreatorID(ctx context.Context, creatorID string) (int64, error)
}
