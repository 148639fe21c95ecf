package fiber

import (
	"context"
	"errors"
	"net/http"

	"link-analytics-service/internal/links/core/domain"
	"link-analytics-service/internal/links/core/usecase"
	"link-analytics-service/internal/logger"
	"link-analytics-service/internal/platform/httpapi"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type LinkUseCase interface {
	CreateLink(ctx context.Context, in usecase.CreateLinkInput) (*domain.Link, error)
	GetLink(ctx context.Context, shortCode string) (*domain.Link, error)
	RenameLink(ctx context.Context, in usecase.RenameLinkInput) (*domain.Link, error)
	DeleteLink(ctx context.Context, shortCode string) (*domain.Link, error)
}

type LinkHandler struct {
	uc       LinkUseCase
	validate *validator.Validate
}

func NewLinkHandler(uc LinkUseCase) *LinkHandler {
	return &LinkHandler{
		uc:       uc,
		validate: httpapi.NewValidator(),
	}
}

// CreateLink godoc
// @Summary Shorten a URL
// @Description Creates a short link, with a generated code unless a custom one is given
// @Tags Links
// @Accept json
// @Produce json
// @Param request body CreateLinkRequest true "Link payload"
// @Success 201 {object} httpapi.Envelope{data=ShortURLResponse}
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 409 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /url/shorten [post]
func (h *LinkHandler) CreateLink(c *fiber.Ctx) error {
	var req CreateLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return httpapi.Error(c, http.StatusBadRequest, "invalid_json", "")
	}

	if err := h.validate.Struct(req); err != nil {
		return httpapi.Error(c, http.StatusBadRequest, "invalid_link", httpapi.ValidationMessage(err))
	}

	link, err := h.uc.CreateLink(c.UserContext(), usecase.CreateLinkInput{
		LongURL:    req.LongURL,
		CustomCode: req.CustomCode,
	})
	if err != nil {
		return h.writeError(c, "create link", err)
	}

	logger.Debug("link created", "short_code", link.ShortCode)
	return httpapi.JSON(c, http.StatusCreated, ShortURLResponse{ShortURL: toLinkResponse(link)})
}

// GetLink godoc
// @Summary Look up a short link
// @Tags Links
// @Produce json
// @Param shortCode query string true "Short code"
// @Success 200 {object} httpapi.Envelope{data=ShortURLResponse}
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /url [get]
func (h *LinkHandler) GetLink(c *fiber.Ctx) error {
	link, err := h.uc.GetLink(c.UserContext(), c.Query("shortCode", ""))
	if err != nil {
		return h.writeError(c, "get link", err)
	}
	return httpapi.JSON(c, http.StatusOK, ShortURLResponse{ShortURL: toLinkResponse(link)})
}

// RenameLink godoc
// @Summary Switch a link to a custom code
// @Description Replaces the short code of an existing link; its clicks move with it
// @Tags Links
// @Accept json
// @Produce json
// @Param request body RenameLinkRequest true "Codes"
// @Success 200 {object} httpapi.Envelope{data=ShortURLResponse}
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Failure 409 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /url/custom-url [patch]
func (h *LinkHandler) RenameLink(c *fiber.Ctx) error {
	var req RenameLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return httpapi.Error(c, http.StatusBadRequest, "invalid_json", "")
	}

	if err := h.validate.Struct(req); err != nil {
		return httpapi.Error(c, http.StatusBadRequest, "invalid_link", httpapi.ValidationMessage(err))
	}

	link, err := h.uc.RenameLink(c.UserContext(), usecase.RenameLinkInput{
		ExistingCode: req.ExistingCode,
		CustomCode:   req.CustomCode,
	})
	if err != nil {
		return h.writeError(c, "rename link", err)
	}

	logger.Debug("link renamed", "from", req.ExistingCode, "to", link.ShortCode)
	return httpapi.JSON(c, http.StatusOK, ShortURLResponse{ShortURL: toLinkResponse(link)})
}

// DeleteLink godoc
// @Summary Delete a short link
// @Description Removes the link and every click recorded for it
// @Tags Links
// @Produce json
// @Param shortCode query string true "Short code"
// @Success 200 {object} httpapi.Envelope{data=DeletedURLResponse}
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /url/delete [delete]
func (h *LinkHandler) DeleteLink(c *fiber.Ctx) error {
	link, err := h.uc.DeleteLink(c.UserContext(), c.Query("shortCode", ""))
	if err != nil {
		return h.writeError(c, "delete link", err)
	}

	logger.Debug("link deleted", "short_code", link.ShortCode)
	return httpapi.JSON(c, http.StatusOK, DeletedURLResponse{DeletedURL: toLinkResponse(link)})
}

func (h *LinkHandler) writeError(c *fiber.Ctx, op string, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidLink),
		errors.Is(err, usecase.ErrInvalidShortCode),
		errors.Is(err, usecase.ErrInvalidCustomCode):
		return httpapi.Error(c, http.StatusBadRequest, "invalid_link", err.Error())
	case errors.Is(err, usecase.ErrCodeTaken):
		return httpapi.Error(c, http.StatusConflict, "code_taken", err.Error())
	case errors.Is(err, usecase.ErrLinkNotFound):
		return httpapi.Error(c, http.StatusNotFound, "not_found", err.Error())
	default:
		logger.Error(op+" failed", "err", err)
		return httpapi.Error(c, http.StatusInternalServerError, "internal_server_error", "")
	}
}
