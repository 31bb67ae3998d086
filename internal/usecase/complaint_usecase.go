package usecase

import (
	"context"
	"time"

	"listed/internal/domain/entity"
	"listed/internal/domain/repository"
	"listed/pkg/errors"
)

type ComplaintUseCase struct {
	complaintRepo repository.ComplaintRepository
	userRepo      repository.UserRepository
	now           func() time.Time
}

func NewComplaintUseCase(
	complaintRepo repository.ComplaintRepository,
	userRepo repository.UserRepository,
) *ComplaintUseCase {
	return &ComplaintUseCase{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		now:           time.Now,
	}
}

type CreateComplaintInput struct {
	ComplaintType        string
	TargetUserIdentifier string
	Subject              string
	Description          string
}

func (uc *ComplaintUseCase) CreateComplaint(ctx context.Context, complainantUID string, input CreateComplaintInput) (*entity.Complaint, error) {
	if !entity.IsValidComplaintType(input.ComplaintType) {
		return nil, errors.BadRequest("Invalid complaint type", nil)
	}
	if input.ComplaintType == entity.ComplaintTypeAgainstUser && input.TargetUserIdentifier == "" {
		return nil, errors.BadRequest("Target user is required for complaints against a user", nil)
	}

	complainant, err := uc.userRepo.GetByID(ctx, complainantUID)
	if err != nil {
		return nil, errors.BadRequest("Invalid complainant", err)
	}

	complaint := &entity.Complaint{
		ComplainantUID:       complainant.ID,
		ComplainantName:      complainant.Name,
		ComplainantEmail:     complainant.Email,
		ComplainantType:      complainant.Role,
		ComplaintType:        input.ComplaintType,
		TargetUserIdentifier: input.TargetUserIdentifier,
		Subject:              input.Subject,
		Description:          input.Description,
		Status:               entity.ComplaintStatusPending,
		AdminNotes:           []entity.AdminNote{},
	}

	if err := uc.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	return complaint, nil
}

func (uc *ComplaintUseCase) GetComplaint(ctx context.Context, id string, actorID string, isAdmin bool) (*entity.Complaint, error) {
	complaint, err := uc.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if complaint.ComplainantUID != actorID && !isAdmin {
		return nil, errors.Forbidden("You don't have permission to view this complaint", nil)
	}

	return complaint, nil
}

func (uc *ComplaintUseCase) ListComplaints(ctx context.Context, status string, limit, offset int) ([]*entity.Complaint, int64, error) {
	if status != "" && !entity.IsValidComplaintStatus(status) {
		return nil, 0, errors.BadRequest("Invalid complaint status", nil)
	}
	return uc.complaintRepo.List(ctx, status, limit, offset)
}

func (uc *ComplaintUseCase) ListMyComplaints(ctx context.Context, uid string, limit, offset int) ([]*entity.Complaint, int64, error) {
	return uc.complaintRepo.ListByComplainantUID(ctx, uid, limit, offset)
}

// UpdateComplaint sets the status and optionally appends an admin note.
// Transitions are deliberately unconstrained: any status may follow any
// other. Notes are append-only; a status-only update leaves the log alone.
func (uc *ComplaintUseCase) UpdateComplaint(ctx context.Context, id string, adminID string, newStatus string, noteText string) (*entity.Complaint, error) {
	if !entity.IsValidComplaintStatus(newStatus) {
		return nil, errors.BadRequest("Invalid complaint status", nil)
	}

	complaint, err := uc.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	admin, err := uc.userRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	var note *entity.AdminNote
	if noteText != "" {
		note = &entity.AdminNote{
			Note:      noteText,
			AdminID:   admin.ID,
			AdminName: admin.Name,
			Timestamp: uc.now(),
		}
	}

	if err := uc.complaintRepo.SetStatus(ctx, id, newStatus, note); err != nil {
		return nil, err
	}

	complaint.Status = newStatus
	if note != nil {
		complaint.AdminNotes = append(complaint.AdminNotes, *note)
	}
	return complaint, nil
}
