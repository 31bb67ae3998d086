package middleware

import (
	"github.com/labstack/echo/v4"

	"listed/internal/domain/repository"
	"listed/pkg/errors"
	"listed/pkg/logger"
	"listed/pkg/response"
)

// AdminMiddleware gates the /v1/admin routes. Admin status lives on the user
// document rather than in the token, so each request re-reads the caller's
// profile.
type AdminMiddleware struct {
	userRepo repository.UserRepository
}

func NewAdminMiddleware(userRepo repository.UserRepository) *AdminMiddleware {
	return &AdminMiddleware{
		userRepo: userRepo,
	}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok || uid == "" {
			return response.Error(c, errors.Unauthorized("Authentication required", nil))
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			logger.Error("Admin check failed for %s: %v", uid, err)
			return response.Error(c, errors.Internal("Failed to verify admin privileges", err))
		}

		if !user.IsAdmin() {
			logger.Warn("Admin route denied for %s", uid)
			return response.Error(c, errors.Forbidden("Admin privileges required", nil))
		}

		return next(c)
	}
}
