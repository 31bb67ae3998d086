package handler

import (
	"time"

	"listed/internal/usecase"
	"listed/pkg/response"
	"listed/pkg/utils"

	"github.com/labstack/echo/v4"
)

type PitchHandler struct {
	pitchUseCase *usecase.PitchUseCase
	users        UserReader
}

func NewPitchHandler(pitchUseCase *usecase.PitchUseCase, users UserReader) *PitchHandler {
	return &PitchHandler{
		pitchUseCase: pitchUseCase,
		users:        users,
	}
}

type createPitchRequest struct {
	ProjectTitle        string  `json:"project_title" validate:"required,min=5,max=120"`
	ProjectSummary      string  `json:"project_summary" validate:"required,min=20,max=5000"`
	FundingAmountSought float64 `json:"funding_amount_sought" validate:"required,gt=0"`
	EquityOffered       float64 `json:"equity_offered" validate:"required,gte=0.1,lte=90"`
	Industry            string  `json:"industry" validate:"required"`
	ContactEmail        string  `json:"contact_email" validate:"required,email"`
	BusinessPlanLink    string  `json:"business_plan_link" validate:"omitempty,url"`
	PitchImageURL       string  `json:"pitch_image_url"`
	Status              string  `json:"status" validate:"omitempty,oneof=draft seeking_funding"`
}

func (r createPitchRequest) toInput() usecase.CreatePitchInput {
	return usecase.CreatePitchInput{
		ProjectTitle:        r.ProjectTitle,
		ProjectSummary:      r.ProjectSummary,
		FundingAmountSought: r.FundingAmountSought,
		EquityOffered:       r.EquityOffered,
		Industry:            r.Industry,
		ContactEmail:        r.ContactEmail,
		BusinessPlanLink:    r.BusinessPlanLink,
		PitchImageURL:       r.PitchImageURL,
		Status:              r.Status,
	}
}

func (h *PitchHandler) CreatePitch(c echo.Context) error {
	var req createPitchRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	creatorID := c.Get("uid").(string)

	pitch, err := h.pitchUseCase.CreatePitch(c.Request().Context(), creatorID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, pitch)
}

func (h *PitchHandler) UpdatePitch(c echo.Context) error {
	id := c.Param("id")

	var req createPitchRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actorID := c.Get("uid").(string)

	pitch, err := h.pitchUseCase.UpdatePitch(c.Request().Context(), id, actorID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, pitch)
}

func (h *PitchHandler) GetPitch(c echo.Context) error {
	id := c.Param("id")

	pitch, err := h.pitchUseCase.GetPitch(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"pitch":                 pitch,
		"is_currently_featured": pitch.IsCurrentlyFeatured(time.Now()),
	})
}

func (h *PitchHandler) ListPitches(c echo.Context) error {
	industry := c.QueryParam("industry")
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	pitches, total, err := h.pitchUseCase.ListPitches(c.Request().Context(), industry, status, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, pitches, total, pagination.Page, pagination.PageSize)
}

func (h *PitchHandler) ListAllPitches(c echo.Context) error {
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	pitches, total, err := h.pitchUseCase.ListAllPitches(c.Request().Context(), status, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, pitches, total, pagination.Page, pagination.PageSize)
}

func (h *PitchHandler) ListMyPitches(c echo.Context) error {
	creatorID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	pitches, total, err := h.pitchUseCase.ListMyPitches(c.Request().Context(), creatorID, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, pitches, total, pagination.Page, pagination.PageSize)
}

type setPitchStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft seeking_funding funded closed"`
}

func (h *PitchHandler) SetStatus(c echo.Context) error {
	id := c.Param("id")

	var req setPitchStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actorID := c.Get("uid").(string)

	pitch, err := h.pitchUseCase.SetStatus(c.Request().Context(), id, actorID, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, pitch)
}

func (h *PitchHandler) SoftDeletePitch(c echo.Context) error {
	id := c.Param("id")

	if err := h.pitchUseCase.SoftDeletePitch(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Pitch removed from listings",
	})
}

func (h *PitchHandler) RestorePitch(c echo.Context) error {
	id := c.Param("id")

	if err := h.pitchUseCase.RestorePitch(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Pitch restored",
	})
}

func (h *PitchHandler) DeletePitch(c echo.Context) error {
	id := c.Param("id")
	actorID := c.Get("uid").(string)

	if err := h.pitchUseCase.DeletePitch(c.Request().Context(), id, actorID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Pitch deleted",
	})
}

type requestFeatureRequest struct {
	PaymentProofDataURI string `json:"payment_proof_data_uri" validate:"required"`
}

func (h *PitchHandler) RequestFeature(c echo.Context) error {
	id := c.Param("id")

	var req requestFeatureRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actorID := c.Get("uid").(string)

	pitch, err := h.pitchUseCase.RequestFeature(c.Request().Context(), id, actorID, req.PaymentProofDataURI)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, pitch)
}

func (h *PitchHandler) ApproveFeature(c echo.Context) error {
	id := c.Param("id")

	pitch, err := h.pitchUseCase.ApproveFeature(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, pitch)
}

func (h *PitchHandler) RejectFeature(c echo.Context) error {
	id := c.Param("id")

	pitch, err := h.pitchUseCase.RejectFeature(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, pitch)
}

type improveSummaryRequest struct {
	Summary string `json:"summary" validate:"required,min=10"`
}

func (h *PitchHandler) ImproveSummary(c echo.Context) error {
	var req improveSummaryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	improved, err := h.pitchUseCase.ImproveSummary(c.Request().Context(), req.Summary)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"improved_summary": improved,
	})
}
