package repository

import (
	"context"

	"listed/internal/domain/entity"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	GetByID(ctx context.Context, id string) (*entity.Complaint, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Complaint, int64, error)
	ListByComplainantUID(ctx context.Context, uid string, limit, offset int) ([]*entity.Complaint, int64, error)
	// SetStatus writes the status field; optional note is appended to the
	// adminNotes array atomically, so concurrent admin updates cannot drop
	// each other's notes.
	SetStatus(ctx context.Context, id string, status string, note *entity.AdminNote) error
}
