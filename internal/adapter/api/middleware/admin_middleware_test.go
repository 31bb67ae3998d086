package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listed/internal/domain/entity"
)

type stubUserReader struct {
	users map[string]*entity.User
	err   error
}

func (s *stubUserReader) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[id]
	if !ok {
		return nil, stderrors.New("user not found")
	}
	return user, nil
}

func (s *stubUserReader) Create(ctx context.Context, user *entity.User) error { return nil }

func (s *stubUserReader) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, stderrors.New("user not found")
}

func (s *stubUserReader) Update(ctx context.Context, user *entity.User) error { return nil }

func (s *stubUserReader) List(ctx context.Context, role string, limit, offset int) ([]*entity.User, int64, error) {
	return nil, 0, nil
}

func adminRequest(t *testing.T, m *AdminMiddleware, uid string) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if uid != "" {
		c.Set("uid", uid)
	}

	handler := m.AdminOnly(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec.Code
}

func TestAdminOnly(t *testing.T) {
	repo := &stubUserReader{users: map[string]*entity.User{
		"admin-1": {ID: "admin-1", Role: entity.RoleAdmin},
		"user-1":  {ID: "user-1", Role: entity.RoleFounder},
	}}
	m := NewAdminMiddleware(repo)

	assert.Equal(t, http.StatusOK, adminRequest(t, m, "admin-1"))
	assert.Equal(t, http.StatusForbidden, adminRequest(t, m, "user-1"))
	assert.Equal(t, http.StatusUnauthorized, adminRequest(t, m, ""))
}

func TestAdminOnlyOnLookupFailure(t *testing.T) {
	m := NewAdminMiddleware(&stubUserReader{err: stderrors.New("firestore unavailable")})

	assert.Equal(t, http.StatusInternalServerError, adminRequest(t, m, "admin-1"))
}
