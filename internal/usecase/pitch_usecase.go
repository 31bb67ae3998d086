package usecase

import (
	"context"
	"time"

	"listed/internal/domain/entity"
	"listed/internal/domain/repository"
	"listed/internal/domain/service"
	"listed/pkg/errors"
)

type PitchUseCase struct {
	pitchRepo repository.PitchRepository
	userRepo  repository.UserRepository
	assistant service.AssistantService
	now       func() time.Time
}

func NewPitchUseCase(
	pitchRepo repository.PitchRepository,
	userRepo repository.UserRepository,
	assistant service.AssistantService,
) *PitchUseCase {
	return &PitchUseCase{
		pitchRepo: pitchRepo,
		userRepo:  userRepo,
		assistant: assistant,
		now:       time.Now,
	}
}

type CreatePitchInput struct {
	ProjectTitle        string
	ProjectSummary      string
	FundingAmountSought float64
	EquityOffered       float64
	Industry            string
	ContactEmail        string
	BusinessPlanLink    string
	PitchImageURL       string
	Status              string
}

func (uc *PitchUseCase) CreatePitch(ctx context.Context, creatorID string, input CreatePitchInput) (*entity.FundingPitch, error) {
	creator, err := uc.userRepo.GetByID(ctx, creatorID)
	if err != nil {
		return nil, errors.BadRequest("Invalid creator", err)
	}

	switch creator.Role {
	case entity.RoleFounder, entity.RoleCorporate, entity.RoleAdmin:
	default:
		return nil, errors.Forbidden("Only founders and corporations can create pitches", nil)
	}

	status := input.Status
	if status == "" {
		status = entity.PitchStatusDraft
	}
	if status != entity.PitchStatusDraft && status != entity.PitchStatusSeekingFunding {
		return nil, errors.BadRequest("New pitches must be draft or seeking_funding", nil)
	}

	pitch := &entity.FundingPitch{
		CreatorID:           creatorID,
		CreatorName:         creator.Name,
		ProjectTitle:        input.ProjectTitle,
		ProjectSummary:      input.ProjectSummary,
		FundingAmountSought: input.FundingAmountSought,
		EquityOffered:       input.EquityOffered,
		Industry:            input.Industry,
		ContactEmail:        input.ContactEmail,
		BusinessPlanLink:    input.BusinessPlanLink,
		PitchImageURL:       input.PitchImageURL,
		Status:              status,
		FeatureStatus:       entity.FeatureStatusNone,
	}

	if err := uc.pitchRepo.Create(ctx, pitch); err != nil {
		return nil, err
	}

	return pitch, nil
}

func (uc *PitchUseCase) UpdatePitch(ctx context.Context, id string, actorID string, input CreatePitchInput) (*entity.FundingPitch, error) {
	pitch, err := uc.pitchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	actor, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if pitch.CreatorID != actorID && !actor.IsAdmin() {
		return nil, errors.Forbidden("You don't have permission to update this pitch", nil)
	}
	if pitch.IsDeletedByAdmin && !actor.IsAdmin() {
		return nil, errors.Forbidden("This pitch has been removed by an administrator", nil)
	}

	pitch.ProjectTitle = input.ProjectTitle
	pitch.ProjectSummary = input.ProjectSummary
	pitch.FundingAmountSought = input.FundingAmountSought
	pitch.EquityOffered = input.EquityOffered
	pitch.Industry = input.Industry
	pitch.ContactEmail = input.ContactEmail
	pitch.BusinessPlanLink = input.BusinessPlanLink
	if input.PitchImageURL != "" {
		pitch.PitchImageURL = input.PitchImageURL
	}

	if err := uc.pitchRepo.Update(ctx, pitch); err != nil {
		return nil, err
	}

	return pitch, nil
}

func (uc *PitchUseCase) GetPitch(ctx context.Context, id string) (*entity.FundingPitch, error) {
	return uc.pitchRepo.GetByID(ctx, id)
}

func (uc *PitchUseCase) ListPitches(ctx context.Context, industry, status string, limit, offset int) ([]*entity.FundingPitch, int64, error) {
	filter := map[string]interface{}{
		// Soft-deleted pitches never appear in public listings.
		"isDeletedByAdmin": false,
	}
	if industry != "" {
		filter["industry"] = industry
	}
	if status != "" {
		filter["status"] = status
	}

	return uc.pitchRepo.List(ctx, filter, limit, offset)
}

func (uc *PitchUseCase) ListAllPitches(ctx context.Context, status string, limit, offset int) ([]*entity.FundingPitch, int64, error) {
	filter := map[string]interface{}{}
	if status != "" {
		filter["status"] = status
	}
	return uc.pitchRepo.List(ctx, filter, limit, offset)
}

func (uc *PitchUseCase) ListMyPitches(ctx context.Context, creatorID string, limit, offset int) ([]*entity.FundingPitch, int64, error) {
	return uc.pitchRepo.ListByCreatorID(ctx, creatorID, limit, offset)
}

// SetStatus moves a pitch through its lifecycle. Admins may set any valid
// status. Creators may publish, close, and reopen-from-funded their own
// pitch. Investors may mark a pitch funded or reopen it. Every transition is
// a single status write, last write wins.
func (uc *PitchUseCase) SetStatus(ctx context.Context, id string, actorID string, newStatus string) (*entity.FundingPitch, error) {
	if !entity.IsValidPitchStatus(newStatus) {
		return nil, errors.BadRequest("Invalid pitch status", nil)
	}

	pitch, err := uc.pitchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	actor, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() {
		if pitch.IsDeletedByAdmin {
			return nil, errors.Forbidden("This pitch has been removed by an administrator", nil)
		}

		isOwner := pitch.CreatorID == actorID
		isInvestor := actor.Role == entity.RoleInvestor

		if !isOwner && !isInvestor {
			return nil, errors.Forbidden("You don't have permission to change this pitch's status", nil)
		}
		if !entity.CanTransitionPitchStatus(pitch.Status, newStatus) {
			return nil, errors.BadRequest("Invalid status transition", nil)
		}
		// Marking a pitch funded is strictly an investor action; creators
		// publish, close, and may reopen their own funded pitch.
		fund := newStatus == entity.PitchStatusFunded
		reopen := pitch.Status == entity.PitchStatusFunded && newStatus == entity.PitchStatusSeekingFunding
		if fund && !isInvestor {
			return nil, errors.Forbidden("Only investors can mark a pitch as funded", nil)
		}
		if !fund && !reopen && !isOwner {
			return nil, errors.Forbidden("Only the pitch creator can change this status", nil)
		}
	}

	if err := uc.pitchRepo.SetStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}

	pitch.Status = newStatus
	return pitch, nil
}

func (uc *PitchUseCase) SoftDeletePitch(ctx context.Context, id string) error {
	if _, err := uc.pitchRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.pitchRepo.SoftDelete(ctx, id)
}

func (uc *PitchUseCase) RestorePitch(ctx context.Context, id string) error {
	pitch, err := uc.pitchRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !pitch.IsDeletedByAdmin {
		return errors.BadRequest("Pitch is not deleted", nil)
	}
	return uc.pitchRepo.Restore(ctx, id)
}

func (uc *PitchUseCase) DeletePitch(ctx context.Context, id string, actorID string) error {
	pitch, err := uc.pitchRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	actor, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}

	if pitch.CreatorID != actorID && !actor.IsAdmin() {
		return errors.Forbidden("You don't have permission to delete this pitch", nil)
	}

	return uc.pitchRepo.Delete(ctx, id)
}

// RequestFeature submits a pitch for paid featuring. Allowed from the none
// and rejected states; a rejected creator re-requests by submitting proof
// again, there is no separate resubmission path.
func (uc *PitchUseCase) RequestFeature(ctx context.Context, id string, actorID string, proofDataURI string) (*entity.FundingPitch, error) {
	if proofDataURI == "" {
		return nil, errors.BadRequest("Payment proof is required", nil)
	}

	pitch, err := uc.pitchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if pitch.CreatorID != actorID {
		return nil, errors.Forbidden("You don't have permission to feature this pitch", nil)
	}
	if pitch.IsDeletedByAdmin {
		return nil, errors.Forbidden("This pitch has been removed by an administrator", nil)
	}

	switch pitch.FeatureStatus {
	case entity.FeatureStatusPendingApproval:
		return nil, errors.Conflict("A feature request is already pending approval")
	case entity.FeatureStatusActive:
		if pitch.IsCurrentlyFeatured(uc.now()) {
			return nil, errors.Conflict("This pitch is already featured")
		}
		// The window lapsed; treat like a fresh request.
	}

	requestedAt := uc.now()
	if err := uc.pitchRepo.RequestFeature(ctx, id, proofDataURI, requestedAt); err != nil {
		return nil, err
	}

	pitch.FeatureStatus = entity.FeatureStatusPendingApproval
	pitch.FeatureRequestedAt = &requestedAt
	pitch.FeaturePaymentProofDataURI = proofDataURI
	return pitch, nil
}

// ApproveFeature activates the feature window: exactly seven days from the
// approval instant. The payment proof is kept as an audit trail.
func (uc *PitchUseCase) ApproveFeature(ctx context.Context, id string) (*entity.FundingPitch, error) {
	pitch, err := uc.pitchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if pitch.FeatureStatus != entity.FeatureStatusPendingApproval {
		return nil, errors.BadRequest("Pitch has no pending feature request", nil)
	}

	endsAt := uc.now().Add(entity.FeatureWindow)
	if err := uc.pitchRepo.ApproveFeature(ctx, id, endsAt); err != nil {
		return nil, err
	}

	pitch.FeatureStatus = entity.FeatureStatusActive
	pitch.FeatureEndsAt = &endsAt
	return pitch, nil
}

// RejectFeature declines the request and deletes the payment proof.
func (uc *PitchUseCase) RejectFeature(ctx context.Context, id string) (*entity.FundingPitch, error) {
	pitch, err := uc.pitchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if pitch.FeatureStatus != entity.FeatureStatusPendingApproval {
		return nil, errors.BadRequest("Pitch has no pending feature request", nil)
	}

	if err := uc.pitchRepo.RejectFeature(ctx, id); err != nil {
		return nil, err
	}

	pitch.FeatureStatus = entity.FeatureStatusRejected
	pitch.FeaturePaymentProofDataURI = ""
	return pitch, nil
}

func (uc *PitchUseCase) ImproveSummary(ctx context.Context, summary string) (string, error) {
	if summary == "" {
		return "", errors.BadRequest("Summary is required", nil)
	}
	return uc.assistant.ImproveSummary(ctx, summary)
}
