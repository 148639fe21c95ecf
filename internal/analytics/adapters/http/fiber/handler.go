package fiber

import (
	"context"
	"errors"
	"net/http"

	"link-analytics-service/internal/analytics/core/domain"
	"link-analytics-service/internal/analytics/core/usecase"
	"link-analytics-service/internal/logger"
	"link-analytics-service/internal/platform/httpapi"

	"github.com/gofiber/fiber/v2"
)

type GetLinkStatsUseCase interface {
	Execute(ctx context.Context, in usecase.GetLinkStatsInput) (*domain.LinkStats, error)
}

type StatsHandler struct {
	uc GetLinkStatsUseCase
}

func NewStatsHandler(uc GetLinkStatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// GetStats godoc
// @Summary Per-link click analytics
// @Description Returns the link, its clicks inside a time window and their breakdown by geography, device, browser, OS and hour of day
// @Tags Analytics
// @Produce json
// @Param shortCode query string true "Short code"
// @Param window query string false "Window: 1h | 1d | 7d | 30d | 90d | 1y" default(7d)
// @Success 200 {object} httpapi.Envelope{data=StatsResponse}
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /url/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	shortCode := c.Query("shortCode", "")
	if shortCode == "" {
		return httpapi.Error(c, http.StatusBadRequest, "invalid_query", "shortCode is required")
	}

	in := usecase.GetLinkStatsInput{
		ShortCode: shortCode,
		Window:    c.Query("window", ""),
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidStatsQuery),
			errors.Is(err, usecase.ErrInvalidWindow):
			return httpapi.Error(c, http.StatusBadRequest, "invalid_query", err.Error())
		case errors.Is(err, usecase.ErrLinkNotFound):
			return httpapi.Error(c, http.StatusNotFound, "not_found", err.Error())
		default:
			logger.Error("stats query failed", "short_code", shortCode, "err", err)
			return httpapi.Error(c, http.StatusInternalServerError, "internal_server_error", "")
		}
	}

	return httpapi.JSON(c, http.StatusOK, toStatsResponse(res))
}

func toStatsResponse(res *domain.LinkStats) StatsResponse {
	clicks := res.Clicks
	if clicks == nil {
		clicks = []domain.ClickEvent{}
	}

	s := res.Summary
	return StatsResponse{
		ShortCode: res.ShortCode,
		ShortURL: LinkResponse{
			ShortCode: res.Link.ShortCode,
			LongURL:   res.Link.LongURL,
			CreatedAt: res.Link.CreatedAt.UnixMilli(),
		},
		Window: string(res.Window),
		From:   res.From.UnixMilli(),
		To:     res.To.UnixMilli(),
		Clicks: clicks,
		Summary: SummaryResponse{
			TotalClicks:       s.TotalClicks,
			ClicksByContinent: s.ClicksByContinent,
			ClicksByCountry:   s.ClicksByCountry,
			ClicksByState:     s.ClicksByState,
			ClicksByCity:      s.ClicksByCity,
			ClicksByDevice:    s.ClicksByDevice,
			ClicksByBrowser:   s.ClicksByBrowser,
			ClicksByOS:        s.ClicksByOS,
			ClicksByTime:      s.ClicksByTime,
		},
	}
}
