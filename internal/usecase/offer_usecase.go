package usecase

import (
	"context"

	"listed/internal/domain/entity"
	"listed/internal/domain/repository"
	"listed/pkg/errors"
)

type OfferUseCase struct {
	platformRepo repository.PlatformOfferRepository
	salesRepo    repository.SalesOfferRepository
	userRepo     repository.UserRepository
}

func NewOfferUseCase(
	platformRepo repository.PlatformOfferRepository,
	salesRepo repository.SalesOfferRepository,
	userRepo repository.UserRepository,
) *OfferUseCase {
	return &OfferUseCase{
		platformRepo: platformRepo,
		salesRepo:    salesRepo,
		userRepo:     userRepo,
	}
}

type OfferInput struct {
	Title          string
	Description    string
	OfferCategory  string
	TargetAudience string
	CommissionType string
	CommissionRate string
	ContactNumber  string
	MediaURL       string
	Status         string
}

func (uc *OfferUseCase) CreatePlatformOffer(ctx context.Context, input OfferInput) (*entity.PlatformOffer, error) {
	status := input.Status
	if status == "" {
		status = entity.OfferStatusDraft
	}
	if !entity.IsValidPlatformOfferStatus(status) {
		return nil, errors.BadRequest("Invalid offer status", nil)
	}

	offer := &entity.PlatformOffer{
		Title:          input.Title,
		Description:    input.Description,
		OfferCategory:  input.OfferCategory,
		TargetAudience: input.TargetAudience,
		CommissionType: input.CommissionType,
		CommissionRate: input.CommissionRate,
		ContactNumber:  input.ContactNumber,
		MediaURL:       input.MediaURL,
		Status:         status,
	}

	if err := uc.platformRepo.Create(ctx, offer); err != nil {
		return nil, err
	}

	return offer, nil
}

func (uc *OfferUseCase) UpdatePlatformOffer(ctx context.Context, id string, input OfferInput) (*entity.PlatformOffer, error) {
	offer, err := uc.platformRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	offer.Title = input.Title
	offer.Description = input.Description
	offer.OfferCategory = input.OfferCategory
	offer.TargetAudience = input.TargetAudience
	offer.CommissionType = input.CommissionType
	offer.CommissionRate = input.CommissionRate
	offer.ContactNumber = input.ContactNumber
	offer.MediaURL = input.MediaURL

	if err := uc.platformRepo.Update(ctx, offer); err != nil {
		return nil, err
	}

	return offer, nil
}

func (uc *OfferUseCase) GetPlatformOffer(ctx context.Context, id string) (*entity.PlatformOffer, error) {
	return uc.platformRepo.GetByID(ctx, id)
}

func (uc *OfferUseCase) ListPlatformOffers(ctx context.Context, category, status string, limit, offset int) ([]*entity.PlatformOffer, int64, error) {
	filter := map[string]interface{}{}
	if category != "" {
		filter["offerCategory"] = category
	}
	if status != "" {
		filter["status"] = status
	}

	return uc.platformRepo.List(ctx, filter, limit, offset)
}

func (uc *OfferUseCase) SetPlatformOfferStatus(ctx context.Context, id string, status string) (*entity.PlatformOffer, error) {
	if !entity.IsValidPlatformOfferStatus(status) {
		return nil, errors.BadRequest("Invalid offer status", nil)
	}

	offer, err := uc.platformRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.platformRepo.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}

	offer.Status = status
	return offer, nil
}

func (uc *OfferUseCase) DeletePlatformOffer(ctx context.Context, id string) error {
	if _, err := uc.platformRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.platformRepo.Delete(ctx, id)
}

func (uc *OfferUseCase) CreateSalesOffer(ctx context.Context, creatorID string, input OfferInput) (*entity.UserSalesOffer, error) {
	creator, err := uc.userRepo.GetByID(ctx, creatorID)
	if err != nil {
		return nil, errors.BadRequest("Invalid creator", err)
	}

	status := input.Status
	if status == "" {
		status = entity.OfferStatusDraft
	}
	if !entity.IsValidSalesOfferStatus(status) {
		return nil, errors.BadRequest("Invalid offer status", nil)
	}

	if status == entity.OfferStatusActive {
		if err := uc.ensureNoActiveSalesOffer(ctx, creatorID); err != nil {
			return nil, err
		}
	}

	offer := &entity.UserSalesOffer{
		CreatorID:           creatorID,
		CreatorName:         creator.Name,
		Title:               input.Title,
		Description:         input.Description,
		OfferCategory:       input.OfferCategory,
		TargetAudience:      input.TargetAudience,
		CommissionType:      input.CommissionType,
		CommissionRateInput: input.CommissionRate,
		ContactNumber:       input.ContactNumber,
		MediaURL:            input.MediaURL,
		Status:              status,
	}

	if err := uc.salesRepo.Create(ctx, offer); err != nil {
		return nil, err
	}

	return offer, nil
}

func (uc *OfferUseCase) UpdateSalesOffer(ctx context.Context, id string, actorID string, input OfferInput) (*entity.UserSalesOffer, error) {
	offer, err := uc.salesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if offer.CreatorID != actorID {
		return nil, errors.Forbidden("You don't have permission to update this offer", nil)
	}

	offer.Title = input.Title
	offer.Description = input.Description
	offer.OfferCategory = input.OfferCategory
	offer.TargetAudience = input.TargetAudience
	offer.CommissionType = input.CommissionType
	offer.CommissionRateInput = input.CommissionRate
	offer.ContactNumber = input.ContactNumber
	offer.MediaURL = input.MediaURL

	if err := uc.salesRepo.Update(ctx, offer); err != nil {
		return nil, err
	}

	return offer, nil
}

func (uc *OfferUseCase) GetSalesOffer(ctx context.Context, id string) (*entity.UserSalesOffer, error) {
	return uc.salesRepo.GetByID(ctx, id)
}

func (uc *OfferUseCase) ListSalesOffers(ctx context.Context, category, status string, limit, offset int) ([]*entity.UserSalesOffer, int64, error) {
	filter := map[string]interface{}{}
	if category != "" {
		filter["offerCategory"] = category
	}
	if status != "" {
		filter["status"] = status
	}

	return uc.salesRepo.List(ctx, filter, limit, offset)
}

func (uc *OfferUseCase) ListMySalesOffers(ctx context.Context, creatorID string, status string, limit, offset int) ([]*entity.UserSalesOffer, int64, error) {
	return uc.salesRepo.ListByCreatorID(ctx, creatorID, status, limit, offset)
}

// SetSalesOfferStatus changes the offer status. Activation re-checks the
// one-active-offer rule server-side so the constraint holds regardless of
// what any client checked before calling.
func (uc *OfferUseCase) SetSalesOfferStatus(ctx context.Context, id string, actorID string, status string, isAdmin bool) (*entity.UserSalesOffer, error) {
	if !entity.IsValidSalesOfferStatus(status) {
		return nil, errors.BadRequest("Invalid offer status", nil)
	}

	offer, err := uc.salesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if offer.CreatorID != actorID && !isAdmin {
		return nil, errors.Forbidden("You don't have permission to change this offer's status", nil)
	}

	if status == entity.OfferStatusActive && offer.Status != entity.OfferStatusActive {
		if err := uc.ensureNoActiveSalesOffer(ctx, offer.CreatorID); err != nil {
			return nil, err
		}
	}

	if err := uc.salesRepo.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}

	offer.Status = status
	return offer, nil
}

func (uc *OfferUseCase) DeleteSalesOffer(ctx context.Context, id string, actorID string, isAdmin bool) error {
	offer, err := uc.salesRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if offer.CreatorID != actorID && !isAdmin {
		return errors.Forbidden("You don't have permission to delete this offer", nil)
	}

	return uc.salesRepo.Delete(ctx, id)
}

func (uc *OfferUseCase) ensureNoActiveSalesOffer(ctx context.Context, creatorID string) error {
	count, err := uc.salesRepo.CountActiveByCreatorID(ctx, creatorID)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.Conflict("You already have an active sales offer")
	}
	return nil
}
