package handler

import (
	"listed/internal/usecase"
	"listed/pkg/response"
	"listed/pkg/utils"

	"github.com/labstack/echo/v4"
)

type OfferHandler struct {
	offerUseCase *usecase.OfferUseCase
	users        UserReader
}

func NewOfferHandler(offerUseCase *usecase.OfferUseCase, users UserReader) *OfferHandler {
	return &OfferHandler{
		offerUseCase: offerUseCase,
		users:        users,
	}
}

func (h *OfferHandler) isAdmin(c echo.Context) bool {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return false
	}
	user, err := h.users.GetByID(c.Request().Context(), uid)
	return err == nil && user.IsAdmin()
}

type offerRequest struct {
	Title          string `json:"title" validate:"required,min=5,max=120"`
	Description    string `json:"description" validate:"required,min=20,max=5000"`
	OfferCategory  string `json:"offer_category" validate:"required"`
	TargetAudience string `json:"target_audience" validate:"required"`
	CommissionType string `json:"commission_type" validate:"required,oneof=percentage fixed hybrid"`
	CommissionRate string `json:"commission_rate" validate:"required"`
	ContactNumber  string `json:"contact_number"`
	MediaURL       string `json:"media_url" validate:"omitempty,url"`
	Status         string `json:"status"`
}

func (r offerRequest) toInput() usecase.OfferInput {
	return usecase.OfferInput{
		Title:          r.Title,
		Description:    r.Description,
		OfferCategory:  r.OfferCategory,
		TargetAudience: r.TargetAudience,
		CommissionType: r.CommissionType,
		CommissionRate: r.CommissionRate,
		ContactNumber:  r.ContactNumber,
		MediaURL:       r.MediaURL,
		Status:         r.Status,
	}
}

type setOfferStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *OfferHandler) CreatePlatformOffer(c echo.Context) error {
	var req offerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	offer, err := h.offerUseCase.CreatePlatformOffer(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, offer)
}

func (h *OfferHandler) UpdatePlatformOffer(c echo.Context) error {
	id := c.Param("id")

	var req offerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	offer, err := h.offerUseCase.UpdatePlatformOffer(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, offer)
}

func (h *OfferHandler) GetPlatformOffer(c echo.Context) error {
	id := c.Param("id")

	offer, err := h.offerUseCase.GetPlatformOffer(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, offer)
}

func (h *OfferHandler) ListPlatformOffers(c echo.Context) error {
	category := c.QueryParam("category")
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	offers, total, err := h.offerUseCase.ListPlatformOffers(c.Request().Context(), category, status, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, offers, total, pagination.Page, pagination.PageSize)
}

func (h *OfferHandler) SetPlatformOfferStatus(c echo.Context) error {
	id := c.Param("id")

	var req setOfferStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	offer, err := h.offerUseCase.SetPlatformOfferStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, offer)
}

func (h *OfferHandler) DeletePlatformOffer(c echo.Context) error {
	id := c.Param("id")

	if err := h.offerUseCase.DeletePlatformOffer(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Offer deleted",
	})
}

func (h *OfferHandler) CreateSalesOffer(c echo.Context) error {
	var req offerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	creatorID := c.Get("uid").(string)

	offer, err := h.offerUseCase.CreateSalesOffer(c.Request().Context(), creatorID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, offer)
}

func (h *OfferHandler) UpdateSalesOffer(c echo.Context) error {
	id := c.Param("id")

	var req offerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actorID := c.Get("uid").(string)

	offer, err := h.offerUseCase.UpdateSalesOffer(c.Request().Context(), id, actorID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, offer)
}

func (h *OfferHandler) GetSalesOffer(c echo.Context) error {
	id := c.Param("id")

	offer, err := h.offerUseCase.GetSalesOffer(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, offer)
}

func (h *OfferHandler) ListSalesOffers(c echo.Context) error {
	category := c.QueryParam("category")
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	offers, total, err := h.offerUseCase.ListSalesOffers(c.Request().Context(), category, status, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, offers, total, pagination.Page, pagination.PageSize)
}

func (h *OfferHandler) ListMySalesOffers(c echo.Context) error {
	creatorID := c.Get("uid").(string)
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	offers, total, err := h.offerUseCase.ListMySalesOffers(c.Request().Context(), creatorID, status, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, offers, total, pagination.Page, pagination.PageSize)
}

func (h *OfferHandler) SetSalesOfferStatus(c echo.Context) error {
	id := c.Param("id")

	var req setOfferStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actorID := c.Get("uid").(string)

	offer, err := h.offerUseCase.SetSalesOfferStatus(c.Request().Context(), id, actorID, req.Status, h.isAdmin(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, offer)
}

func (h *OfferHandler) DeleteSalesOffer(c echo.Context) error {
	id := c.Param("id")
	actorID := c.Get("uid").(string)

	if err := h.offerUseCase.DeleteSalesOffer(c.Request().Context(), id, actorID, h.isAdmin(c)); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Offer deleted",
	})
}
