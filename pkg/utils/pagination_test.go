package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paramsFor(query string) PaginationParams {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/pitches?"+query, nil)
	return GetPaginationParams(e.NewContext(req, httptest.NewRecorder()))
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  PaginationParams
	}{
		{"defaults", "", PaginationParams{Page: 1, PageSize: 20, Offset: 0}},
		{"explicit window", "page=3&limit=10", PaginationParams{Page: 3, PageSize: 10, Offset: 20}},
		{"limit clamped to max", "limit=500", PaginationParams{Page: 1, PageSize: 20, Offset: 0}},
		{"negative values ignored", "page=-2&limit=-5", PaginationParams{Page: 1, PageSize: 20, Offset: 0}},
		{"garbage ignored", "page=abc&limit=xyz", PaginationParams{Page: 1, PageSize: 20, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paramsFor(tt.query))
		})
	}
}
