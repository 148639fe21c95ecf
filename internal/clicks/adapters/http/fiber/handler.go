package fiber

import (
	"context"
	"errors"
	"net/http"

	"link-analytics-service/internal/clicks/core/usecase"
	"link-analytics-service/internal/logger"
	"link-analytics-service/internal/platform/httpapi"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type RecordClickUseCase interface {
	Execute(ctx context.Context, in usecase.RecordClickInput) (bool, error)
	BulkRecordClicks(ctx context.Context, in usecase.BulkRecordClicksInput) (usecase.BulkRecordClicksResult, error)
}

type ClickHandler struct {
	recordUC RecordClickUseCase
	validate *validator.Validate
}

func NewClickHandler(recordUC RecordClickUseCase) *ClickHandler {
	return &ClickHandler{
		recordUC: recordUC,
		validate: httpapi.NewValidator(),
	}
}

// CreateClick godoc
// @Summary Record a click
// @Description Stores a single click of a short link; repeated click ids are ignored
// @Tags Clicks
// @Accept json
// @Produce json
// @Param request body CreateClickRequest true "Click payload"
// @Success 201 {object} httpapi.Envelope{data=CreateClickResponse}
// @Success 200 {object} httpapi.Envelope{data=CreateClickResponse} "Duplicate click"
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /clicks [post]
func (h *ClickHandler) CreateClick(c *fiber.Ctx) error {
	var req CreateClickRequest

	if err := c.BodyParser(&req); err != nil {
		return httpapi.Error(c, http.StatusBadRequest, "invalid_json", "")
	}

	if err := h.validate.Struct(req); err != nil {
		return httpapi.Error(c, http.StatusBadRequest, "invalid_click", httpapi.ValidationMessage(err))
	}

	created, err := h.recordUC.Execute(c.UserContext(), toInput(req))
	if err != nil {
		return h.writeError(c, err)
	}

	if !created {
		return httpapi.JSON(c, http.StatusOK, CreateClickResponse{Status: "duplicate"})
	}

	return httpapi.JSON(c, http.StatusCreated, CreateClickResponse{Status: "created"})
}

// BulkCreateClicks godoc
// @Summary Bulk record clicks
// @Description Validates a list of clicks and stores them individually
// @Tags Clicks
// @Accept json
// @Produce json
// @Param request body BulkCreateClicksRequest true "Bulk click payload"
// @Success 201 {object} httpapi.Envelope{data=BulkCreateClicksResponse}
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /clicks/bulk [post]
func (h *ClickHandler) BulkCreateClicks(c *fiber.Ctx) error {
	var req BulkCreateClicksRequest
	if err := c.BodyParser(&req); err != nil {
		return httpapi.Error(c, http.StatusBadRequest, "invalid_json", "")
	}

	if len(req.Clicks) == 0 {
		return httpapi.Error(c, http.StatusBadRequest, "clicks_list_required", "")
	}

	if err := h.validate.Struct(req); err != nil {
		return httpapi.Error(c, http.StatusBadRequest, "invalid_click", httpapi.ValidationMessage(err))
	}

	inputs := make([]usecase.RecordClickInput, len(req.Clicks))
	for i, r := range req.Clicks {
		inputs[i] = toInput(r)
	}

	result, err := h.recordUC.BulkRecordClicks(
		c.UserContext(),
		usecase.BulkRecordClicksInput{Clicks: inputs},
	)
	if err != nil {
		return h.writeError(c, err)
	}

	return httpapi.JSON(c, http.StatusCreated, BulkCreateClicksResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

func (h *ClickHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidClick),
		errors.Is(err, usecase.ErrFutureTime):
		return httpapi.Error(c, http.StatusBadRequest, "invalid_click", err.Error())
	default:
		logger.Error("record click failed", "err", err)
		return httpapi.Error(c, http.StatusInternalServerError, "internal_server_error", "")
	}
}

func toInput(r CreateClickRequest) usecase.RecordClickInput {
	return usecase.RecordClickInput{
		ClickID:   r.ClickID,
		ShortCode: r.ShortCode,
		CreatedAt: int64(r.CreatedAt),
		Continent: r.Continent,
		Country:   r.Country,
		State:     r.State,
		City:      r.City,
		Device:    r.Device,
		Browser:   r.Browser,
		OS:        r.OS,
	}
}
