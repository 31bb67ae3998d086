package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitedRequest(t *testing.T, m *RateLimitMiddleware, uid string) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/engagement/pitches/p1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if uid != "" {
		c.Set("uid", uid)
	}

	handler := m.Limit(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec.Code
}

func TestLimitRejectsAfterBucketDrains(t *testing.T) {
	m := NewRateLimitMiddleware(2, 1, time.Hour)

	assert.Equal(t, http.StatusOK, limitedRequest(t, m, "user-1"))
	assert.Equal(t, http.StatusOK, limitedRequest(t, m, "user-1"))
	assert.Equal(t, http.StatusTooManyRequests, limitedRequest(t, m, "user-1"))
}

func TestLimitKeysPerUser(t *testing.T) {
	m := NewRateLimitMiddleware(1, 1, time.Hour)

	assert.Equal(t, http.StatusOK, limitedRequest(t, m, "user-1"))
	assert.Equal(t, http.StatusTooManyRequests, limitedRequest(t, m, "user-1"))
	// A drained bucket for one user must not throttle another.
	assert.Equal(t, http.StatusOK, limitedRequest(t, m, "user-2"))
}
