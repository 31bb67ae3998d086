package handler

import (
	"listed/internal/domain/entity"
	"listed/internal/usecase"
	"listed/pkg/errors"
	"listed/pkg/response"
	"listed/pkg/utils"

	"github.com/labstack/echo/v4"
)

type EngagementHandler struct {
	engagementUseCase *usecase.EngagementUseCase
}

func NewEngagementHandler(engagementUseCase *usecase.EngagementUseCase) *EngagementHandler {
	return &EngagementHandler{
		engagementUseCase: engagementUseCase,
	}
}

// parentRef maps the route segment to the backing collection.
func parentRef(c echo.Context) (entity.EntityRef, error) {
	var collection string
	switch c.Param("target") {
	case "pitches":
		collection = usecase.CollectionFundingPitches
	case "platform-offers":
		collection = usecase.CollectionPlatformOffers
	case "sales-offers":
		collection = usecase.CollectionSalesOffers
	default:
		return entity.EntityRef{}, errors.BadRequest("Unknown engagement target", nil)
	}

	return entity.EntityRef{Collection: collection, ID: c.Param("id")}, nil
}

type recordEngagementRequest struct {
	Kind string `json:"kind" validate:"required,oneof=view interest disinterest peerInterest"`
}

func (h *EngagementHandler) RecordEngagement(c echo.Context) error {
	parent, err := parentRef(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req recordEngagementRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actorID := c.Get("uid").(string)

	recorded, err := h.engagementUseCase.RecordEngagement(c.Request().Context(), parent, actorID, entity.EngagementKind(req.Kind))
	if err != nil {
		return response.Error(c, err)
	}

	message := "Engagement recorded"
	if !recorded {
		message = "No action taken"
	}

	return response.Success(c, map[string]interface{}{
		"recorded": recorded,
		"message":  message,
	})
}

type bulkEngagementRequest struct {
	Kind    string   `json:"kind" validate:"required,oneof=view interest disinterest peerInterest"`
	UserIDs []string `json:"user_ids" validate:"required"`
}

func (h *EngagementHandler) RecordEngagementBulk(c echo.Context) error {
	parent, err := parentRef(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req bulkEngagementRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	recorded, err := h.engagementUseCase.RecordEngagementBulk(c.Request().Context(), parent, req.UserIDs, entity.EngagementKind(req.Kind))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"recorded": recorded,
		"skipped":  len(req.UserIDs) - recorded,
	})
}

func (h *EngagementHandler) ListMembers(c echo.Context) error {
	parent, err := parentRef(c)
	if err != nil {
		return response.Error(c, err)
	}

	kind := entity.EngagementKind(c.Param("kind"))
	pagination := utils.GetPaginationParams(c)

	members, total, err := h.engagementUseCase.ListMembers(c.Request().Context(), parent, kind, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, members, total, pagination.Page, pagination.PageSize)
}
