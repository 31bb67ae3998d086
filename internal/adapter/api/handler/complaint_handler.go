package handler

import (
	"listed/internal/usecase"
	"listed/pkg/response"
	"listed/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ComplaintHandler struct {
	complaintUseCase *usecase.ComplaintUseCase
	users            UserReader
}

func NewComplaintHandler(complaintUseCase *usecase.ComplaintUseCase, users UserReader) *ComplaintHandler {
	return &ComplaintHandler{
		complaintUseCase: complaintUseCase,
		users:            users,
	}
}

func (h *ComplaintHandler) isAdmin(c echo.Context) bool {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return false
	}
	user, err := h.users.GetByID(c.Request().Context(), uid)
	return err == nil && user.IsAdmin()
}

type createComplaintRequest struct {
	ComplaintType        string `json:"complaint_type" validate:"required"`
	TargetUserIdentifier string `json:"target_user_identifier"`
	Subject              string `json:"subject" validate:"required,min=5,max=200"`
	Description          string `json:"description" validate:"required,min=20,max=5000"`
}

func (h *ComplaintHandler) CreateComplaint(c echo.Context) error {
	var req createComplaintRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	complaint, err := h.complaintUseCase.CreateComplaint(c.Request().Context(), uid, usecase.CreateComplaintInput{
		ComplaintType:        req.ComplaintType,
		TargetUserIdentifier: req.TargetUserIdentifier,
		Subject:              req.Subject,
		Description:          req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, complaint)
}

func (h *ComplaintHandler) GetComplaint(c echo.Context) error {
	uid := c.Get("uid").(string)

	complaint, err := h.complaintUseCase.GetComplaint(c.Request().Context(), c.Param("id"), uid, h.isAdmin(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, complaint)
}

func (h *ComplaintHandler) ListComplaints(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	complaints, total, err := h.complaintUseCase.ListComplaints(c.Request().Context(), c.QueryParam("status"), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, complaints, total, pagination.Page, pagination.PageSize)
}

func (h *ComplaintHandler) ListMyComplaints(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	complaints, total, err := h.complaintUseCase.ListMyComplaints(c.Request().Context(), uid, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, complaints, total, pagination.Page, pagination.PageSize)
}

type updateComplaintRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note"`
}

func (h *ComplaintHandler) UpdateComplaint(c echo.Context) error {
	var req updateComplaintRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	complaint, err := h.complaintUseCase.UpdateComplaint(c.Request().Context(), c.Param("id"), uid, req.Status, req.Note)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, complaint)
}
