package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	analytics "link-analytics-service/internal/analytics/core/domain"
	"link-analytics-service/internal/clicks/core/domain"
	"link-analytics-service/internal/clicks/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidClick = errors.New("invalid click")
	ErrFutureTime   = errors.New("timestamp cannot be in the future")
)

type RecordClickUseCase struct {
	repo ports.ClickRepositoryPort
	now  func() time.Time
}

func NewRecordClickUseCase(repo ports.ClickRepositoryPort) *RecordClickUseCase {
	return &RecordClickUseCase{repo: repo, now: time.Now}
}

// WithClock replaces the time source; used by tests.
func (uc *RecordClickUseCase) WithClock(now func() time.Time) *RecordClickUseCase {
	uc.now = now
	return uc
}

type RecordClickInput struct {
	ClickID   string // optional; generated when empty
	ShortCode string
	CreatedAt int64 // unix ms
	Continent analytics.Attr
	Country   analytics.Attr
	State     analytics.Attr
	City      analytics.Attr
	Device    analytics.Attr
	Browser   analytics.Attr
	OS        analytics.Attr
}

func (uc *RecordClickUseCase) Execute(ctx context.Context, in RecordClickInput) (bool, error) {
	if err := uc.validateInput(in); err != nil {
		return false, err
	}

	clickID := in.ClickID
	if clickID == "" {
		clickID = uuid.New().String()
	}

	c := &domain.Click{
		ClickID:   clickID,
		ShortCode: strings.TrimSpace(in.ShortCode),
		Event: analytics.ClickEvent{
			CreatedAt: time.UnixMilli(in.CreatedAt).UTC(),
			Continent: in.Continent,
			Country:   in.Country,
			State:     in.State,
			City:      in.City,
			Device:    in.Device,
			Browser:   in.Browser,
			OS:        in.OS,
		},
	}

	return uc.repo.InsertClick(ctx, c)
}

type BulkRecordClicksInput struct {
	Clicks []RecordClickInput
}

type BulkRecordClicksResult struct {
	Created    int
	Duplicates int
}

// BulkRecordClicks validates every click before storing any of them.
func (uc *RecordClickUseCase) BulkRecordClicks(ctx context.Context, in BulkRecordClicksInput) (BulkRecordClicksResult, error) {
	var res BulkRecordClicksResult

	for _, c := range in.Clicks {
		if err := uc.validateInput(c); err != nil {
			return res, err
		}
	}

	for _, c := range in.Clicks {
		ok, err := uc.Execute(ctx, c)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

func (uc *RecordClickUseCase) validateInput(in RecordClickInput) error {
	if strings.TrimSpace(in.ShortCode) == "" || in.CreatedAt <= 0 {
		return ErrInvalidClick
	}

	if in.ClickID != "" {
		if _, err := uuid.Parse(in.ClickID); err != nil {
			return ErrInvalidClick
		}
	}

	if in.CreatedAt > uc.now().UnixMilli() {
		return ErrFutureTime
	}

	return nil
}
