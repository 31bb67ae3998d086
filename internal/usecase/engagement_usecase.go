package usecase

import (
	"context"
	"time"

	"listed/internal/domain/entity"
	"listed/internal/domain/repository"
	"listed/pkg/errors"
	"listed/pkg/logger"
)

// Collections that can carry engagement subcollections.
const (
	CollectionFundingPitches = "fundingPitches"
	CollectionPlatformOffers = "platformOffers"
	CollectionSalesOffers    = "userSalesOffers"
)

type EngagementUseCase struct {
	engagementRepo repository.EngagementRepository
	userRepo       repository.UserRepository
	now            func() time.Time
}

func NewEngagementUseCase(
	engagementRepo repository.EngagementRepository,
	userRepo repository.UserRepository,
) *EngagementUseCase {
	return &EngagementUseCase{
		engagementRepo: engagementRepo,
		userRepo:       userRepo,
		now:            time.Now,
	}
}

func IsEngagementParentCollection(collection string) bool {
	switch collection {
	case CollectionFundingPitches, CollectionPlatformOffers, CollectionSalesOffers:
		return true
	}
	return false
}

// RecordEngagement records one engagement fact for the acting user. Returns
// false when the precondition makes it a no-op: the user already holds this
// fact (or, for interest/disinterest, the opposite one). A skip is not an
// error and never double-counts.
func (uc *EngagementUseCase) RecordEngagement(ctx context.Context, parent entity.EntityRef, actorID string, kind entity.EngagementKind) (bool, error) {
	if !entity.IsValidEngagementKind(kind) {
		return false, errors.BadRequest("Invalid engagement kind", nil)
	}
	if !IsEngagementParentCollection(parent.Collection) {
		return false, errors.BadRequest("Invalid engagement target", nil)
	}

	actor, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return false, err
	}

	eligible, err := uc.isEligible(ctx, parent, actorID, kind)
	if err != nil {
		return false, err
	}
	if !eligible {
		return false, nil
	}

	member := entity.EngagementMember{
		UserID:     actor.ID,
		UserName:   actor.Name,
		UserType:   actor.Role,
		AvatarSeed: actor.AvatarSeed,
		Timestamp:  uc.now(),
	}

	if err := uc.engagementRepo.AddMembers(ctx, parent, kind, []entity.EngagementMember{member}); err != nil {
		return false, err
	}

	return true, nil
}

// RecordEngagementBulk applies the per-user precondition to every acting
// user, then commits all eligible members with a single counter increment.
// The result is numerically identical to recording each user individually.
// Zero eligible users means zero writes: no batch is committed.
func (uc *EngagementUseCase) RecordEngagementBulk(ctx context.Context, parent entity.EntityRef, actorIDs []string, kind entity.EngagementKind) (int, error) {
	if !entity.IsValidEngagementKind(kind) {
		return 0, errors.BadRequest("Invalid engagement kind", nil)
	}
	if !IsEngagementParentCollection(parent.Collection) {
		return 0, errors.BadRequest("Invalid engagement target", nil)
	}

	seen := make(map[string]bool, len(actorIDs))
	var members []entity.EngagementMember

	for _, actorID := range actorIDs {
		if seen[actorID] {
			continue
		}
		seen[actorID] = true

		actor, err := uc.userRepo.GetByID(ctx, actorID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				logger.Warn("Skipping unknown user %s in bulk engagement", actorID)
				continue
			}
			return 0, err
		}

		eligible, err := uc.isEligible(ctx, parent, actorID, kind)
		if err != nil {
			return 0, err
		}
		if !eligible {
			continue
		}

		members = append(members, entity.EngagementMember{
			UserID:     actor.ID,
			UserName:   actor.Name,
			UserType:   actor.Role,
			AvatarSeed: actor.AvatarSeed,
			Timestamp:  uc.now(),
		})
	}

	if len(members) == 0 {
		return 0, nil
	}

	if err := uc.engagementRepo.AddMembers(ctx, parent, kind, members); err != nil {
		return 0, err
	}

	return len(members), nil
}

func (uc *EngagementUseCase) ListMembers(ctx context.Context, parent entity.EntityRef, kind entity.EngagementKind, limit, offset int) ([]*entity.EngagementMember, int64, error) {
	if !entity.IsValidEngagementKind(kind) {
		return nil, 0, errors.BadRequest("Invalid engagement kind", nil)
	}
	if !IsEngagementParentCollection(parent.Collection) {
		return nil, 0, errors.BadRequest("Invalid engagement target", nil)
	}

	return uc.engagementRepo.ListMembers(ctx, parent, kind, limit, offset)
}

// isEligible checks the membership precondition. Interest and disinterest
// are mutually exclusive per user per entity, so either existing fact blocks
// both kinds.
func (uc *EngagementUseCase) isEligible(ctx context.Context, parent entity.EntityRef, actorID string, kind entity.EngagementKind) (bool, error) {
	switch kind {
	case entity.EngagementInterest, entity.EngagementDisinterest:
		interested, err := uc.engagementRepo.IsMember(ctx, parent, entity.EngagementInterest, actorID)
		if err != nil {
			return false, err
		}
		if interested {
			return false, nil
		}
		disinterested, err := uc.engagementRepo.IsMember(ctx, parent, entity.EngagementDisinterest, actorID)
		if err != nil {
			return false, err
		}
		return !disinterested, nil
	default:
		member, err := uc.engagementRepo.IsMember(ctx, parent, kind, actorID)
		if err != nil {
			return false, err
		}
		return !member, nil
	}
}
