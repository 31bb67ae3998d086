package repository

import (
	"context"

	"listed/internal/domain/entity"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	GetByID(ctx context.Context, id string) (*entity.Inquiry, error)
	List(ctx context.Context, handled *bool, limit, offset int) ([]*entity.Inquiry, int64, error)
	MarkHandled(ctx context.Context, id string) error
}
