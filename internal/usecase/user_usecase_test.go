package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listed/internal/domain/entity"
	"listed/pkg/errors"
)

type fakeAuthClient struct {
	nextUID int
}

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	f.nextUID++
	return fmt.Sprintf("uid-%d", f.nextUID), nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	return "", errors.Unauthorized("Invalid token", nil)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo(), &fakeAuthClient{})

	_, err := uc.Register(context.Background(), RegisterInput{
		Email: "a@example.com", Password: "secret123", Name: "A", Role: entity.RoleAdmin,
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.Register(context.Background(), RegisterInput{
		Email: "a@example.com", Password: "secret123", Name: "A", Role: "moderator",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{ID: "u1", Email: "taken@example.com", Role: entity.RoleFounder})
	uc := NewUserUseCase(repo, &fakeAuthClient{})

	_, err := uc.Register(context.Background(), RegisterInput{
		Email: "taken@example.com", Password: "secret123", Name: "B", Role: entity.RoleInvestor,
	})
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestRegisterCreatesUserWithAvatarSeed(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo, &fakeAuthClient{})

	user, err := uc.Register(context.Background(), RegisterInput{
		Email: "new@example.com", Password: "secret123", Name: "New", Role: entity.RoleSalesProfessional,
	})
	require.NoError(t, err)

	assert.Equal(t, "uid-1", user.ID)
	assert.NotEmpty(t, user.AvatarSeed)
	assert.Equal(t, "active", user.Status)

	stored, err := repo.GetByID(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSalesProfessional, stored.Role)
}
