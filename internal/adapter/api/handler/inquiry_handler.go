package handler

import (
	"strconv"

	"listed/internal/usecase"
	"listed/pkg/response"
	"listed/pkg/utils"

	"github.com/labstack/echo/v4"
)

type InquiryHandler struct {
	inquiryUseCase *usecase.InquiryUseCase
}

func NewInquiryHandler(inquiryUseCase *usecase.InquiryUseCase) *InquiryHandler {
	return &InquiryHandler{inquiryUseCase: inquiryUseCase}
}

type createInquiryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=3,max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

func (h *InquiryHandler) CreateInquiry(c echo.Context) error {
	var req createInquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	// Contact form is open to visitors; attach the uid when one is present.
	uid, _ := c.Get("uid").(string)

	inquiry, err := h.inquiryUseCase.CreateInquiry(c.Request().Context(), usecase.CreateInquiryInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		UserID:  uid,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, inquiry)
}

func (h *InquiryHandler) GetInquiry(c echo.Context) error {
	inquiry, err := h.inquiryUseCase.GetInquiry(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, inquiry)
}

func (h *InquiryHandler) ListInquiries(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	var handled *bool
	if raw := c.QueryParam("handled"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			handled = &parsed
		}
	}

	inquiries, total, err := h.inquiryUseCase.ListInquiries(c.Request().Context(), handled, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, inquiries, total, pagination.Page, pagination.PageSize)
}

func (h *InquiryHandler) MarkInquiryHandled(c echo.Context) error {
	if err := h.inquiryUseCase.MarkInquiryHandled(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Inquiry marked as handled"})
}
