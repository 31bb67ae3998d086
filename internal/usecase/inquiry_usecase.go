package usecase

import (
	"context"

	"listed/internal/domain/entity"
	"listed/internal/domain/repository"
)

type InquiryUseCase struct {
	inquiryRepo repository.InquiryRepository
}

func NewInquiryUseCase(inquiryRepo repository.InquiryRepository) *InquiryUseCase {
	return &InquiryUseCase{inquiryRepo: inquiryRepo}
}

type CreateInquiryInput struct {
	Name    string
	Email   string
	Subject string
	Message string
	UserID  string
}

func (uc *InquiryUseCase) CreateInquiry(ctx context.Context, input CreateInquiryInput) (*entity.Inquiry, error) {
	inquiry := &entity.Inquiry{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
		UserID:  input.UserID,
	}

	if err := uc.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	return inquiry, nil
}

func (uc *InquiryUseCase) GetInquiry(ctx context.Context, id string) (*entity.Inquiry, error) {
	return uc.inquiryRepo.GetByID(ctx, id)
}

func (uc *InquiryUseCase) ListInquiries(ctx context.Context, handled *bool, limit, offset int) ([]*entity.Inquiry, int64, error) {
	return uc.inquiryRepo.List(ctx, handled, limit, offset)
}

func (uc *InquiryUseCase) MarkInquiryHandled(ctx context.Context, id string) error {
	if _, err := uc.inquiryRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.inquiryRepo.MarkHandled(ctx, id)
}
