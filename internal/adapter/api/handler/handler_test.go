package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"listed/internal/usecase"
)

func TestCheckHealth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHealthHandler(nil)

	if assert.NoError(t, h.CheckHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "running")
	}
}

func TestParentRefMapsRouteSegments(t *testing.T) {
	e := echo.New()

	tests := []struct {
		segment    string
		collection string
	}{
		{"pitches", usecase.CollectionFundingPitches},
		{"platform-offers", usecase.CollectionPlatformOffers},
		{"sales-offers", usecase.CollectionSalesOffers},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetParamNames("target", "id")
		c.SetParamValues(tt.segment, "doc-1")

		ref, err := parentRef(c)
		assert.NoError(t, err)
		assert.Equal(t, tt.collection, ref.Collection)
		assert.Equal(t, "doc-1", ref.ID)
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("target", "id")
	c.SetParamValues("users", "doc-1")

	_, err := parentRef(c)
	assert.Error(t, err)
}
