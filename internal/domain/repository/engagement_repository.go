package repository

import (
	"context"

	"listed/internal/domain/entity"
)

type EngagementRepository interface {
	// IsMember reports whether the acting user already has a document in the
	// kind's subcollection under the parent.
	IsMember(ctx context.Context, parent entity.EntityRef, kind entity.EngagementKind, userID string) (bool, error)

	// AddMembers writes one subdocument per member keyed by user id and
	// increments the parent's paired counter by len(members), all in a
	// single atomic batch. The counter and subcollection contents must never
	// diverge: either every write lands or none does. Callers must not pass
	// an empty slice.
	AddMembers(ctx context.Context, parent entity.EntityRef, kind entity.EngagementKind, members []entity.EngagementMember) error

	ListMembers(ctx context.Context, parent entity.EntityRef, kind entity.EngagementKind, limit, offset int) ([]*entity.EngagementMember, int64, error)
}
