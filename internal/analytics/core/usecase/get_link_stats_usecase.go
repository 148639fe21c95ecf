package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"link-analytics-service/internal/analytics/core/aggregator"
	"link-analytics-service/internal/analytics/core/domain"
	"link-analytics-service/internal/analytics/core/ports"
)

var (
	ErrInvalidStatsQuery = errors.New("invalid stats query")
	ErrInvalidWindow     = errors.New("invalid time window")
	ErrLinkNotFound      = errors.New("link not found")
)

type GetLinkStatsInput struct {
	ShortCode string
	Window    string // "" -> default window
}

type GetLinkStatsUseCase struct {
	links         ports.LinkReaderPort
	reader        ports.ClickReaderPort
	defaultWindow domain.Window
	loc           *time.Location
	now           func() time.Time
}

// NewGetLinkStatsUseCase builds the use case. loc is the zone hours are
// bucketed in; nil keeps the process-local zone.
func NewGetLinkStatsUseCase(links ports.LinkReaderPort, reader ports.ClickReaderPort, defaultWindow domain.Window, loc *time.Location) *GetLinkStatsUseCase {
	if !defaultWindow.Valid() {
		defaultWindow = domain.DefaultWindow
	}
	if loc == nil {
		loc = time.Local
	}
	return &GetLinkStatsUseCase{
		links:         links,
		reader:        reader,
		defaultWindow: defaultWindow,
		loc:           loc,
		now:           time.Now,
	}
}

// WithClock replaces the time source; used by tests.
func (uc *GetLinkStatsUseCase) WithClock(now func() time.Time) *GetLinkStatsUseCase {
	uc.now = now
	return uc
}

// Execute validates the input, resolves the link, loads its clicks inside the
// window and aggregates them.
func (uc *GetLinkStatsUseCase) Execute(ctx context.Context, in GetLinkStatsInput) (*domain.LinkStats, error) {
	code := strings.TrimSpace(in.ShortCode)
	if code == "" {
		return nil, ErrInvalidStatsQuery
	}

	window := uc.defaultWindow
	if in.Window != "" {
		window = domain.Window(in.Window)
	}
	if !window.Valid() {
		return nil, ErrInvalidWindow
	}

	link, found, err := uc.links.FindLink(ctx, code)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrLinkNotFound
	}

	now := uc.now()
	since := now.Add(-window.Duration())

	clicks, err := uc.reader.ListClicks(ctx, ports.ClickFilter{
		ShortCode: code,
		Since:     since,
	})
	if err != nil {
		return nil, err
	}

	recent := aggregator.FilterByWindow(clicks, window, now)

	return &domain.LinkStats{
		ShortCode: code,
		Link:      link,
		Window:    window,
		From:      since,
		To:        now,
		Clicks:    recent,
		Summary:   aggregator.ComputeSummaryIn(recent, uc.loc),
	}, nil
}
