package usecase

import (
	"context"

	"github.com/google/uuid"

	"listed/internal/domain/entity"
	"listed/internal/domain/repository"
	"listed/pkg/errors"
)

type UserUseCase struct {
	userRepo   repository.UserRepository
	authClient AuthClient
}

func NewUserUseCase(userRepo repository.UserRepository, authClient AuthClient) *UserUseCase {
	return &UserUseCase{
		userRepo:   userRepo,
		authClient: authClient,
	}
}

type RegisterInput struct {
	Email       string
	Password    string
	Name        string
	Phone       string
	Role        string
	CompanyName string
}

func (uc *UserUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	switch input.Role {
	case entity.RoleFounder, entity.RoleInvestor, entity.RoleSalesProfessional, entity.RoleCorporate:
	default:
		// Admin accounts are provisioned out of band, never self-registered.
		return nil, errors.BadRequest("Invalid role", nil)
	}

	if _, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, errors.Conflict("Email is already registered")
	}

	uid, err := uc.authClient.CreateUser(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		return nil, errors.Internal("Failed to create auth account", err)
	}

	user := &entity.User{
		ID:          uid,
		Email:       input.Email,
		Name:        input.Name,
		Phone:       input.Phone,
		Role:        input.Role,
		Status:      "active",
		CompanyName: input.CompanyName,
		AvatarSeed:  uuid.New().String(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, uid)
}

type UpdateProfileInput struct {
	Name        string
	Phone       string
	CompanyName string
	Bio         string
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	user.Phone = input.Phone
	user.CompanyName = input.CompanyName
	user.Bio = input.Bio

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) ListUsers(ctx context.Context, role string, limit, offset int) ([]*entity.User, int64, error) {
	return uc.userRepo.List(ctx, role, limit, offset)
}
