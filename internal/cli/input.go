package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"link-analytics-service/internal/analytics/core/domain"
)

// clickRecord is one exported click. createdAt may be unix milliseconds or an
// RFC 3339 string, the same forms POST /clicks accepts.
type clickRecord struct {
	CreatedAt *domain.EpochMillis `json:"createdAt"`
	Continent domain.Attr         `json:"continent"`
	Country   domain.Attr         `json:"country"`
	State     domain.Attr         `json:"state"`
	City      domain.Attr         `json:"city"`
	Device    domain.Attr         `json:"device"`
	Browser   domain.Attr         `json:"browser"`
	OS        domain.Attr         `json:"os"`
}

var errNoClicks = errors.New(`input is not a click list: expected an array, {"clicks": [...]} or {"data": {"clicks": [...]}}`)

// openInput opens path for reading; "-" or "" is stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// readClicks decodes a bare array, an object with a "clicks" array, or the
// stats API envelope {"success": true, "data": {"clicks": [...]}}.
func readClicks(r io.Reader) ([]domain.ClickEvent, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errNoClicks
	}

	list, err := clickList(raw)
	if err != nil {
		return nil, err
	}

	var records []clickRecord
	if err := json.Unmarshal(list, &records); err != nil {
		return nil, fmt.Errorf("decode clicks: %w", err)
	}

	events := make([]domain.ClickEvent, 0, len(records))
	for i, rec := range records {
		if rec.CreatedAt == nil {
			return nil, fmt.Errorf("click %d: missing createdAt", i)
		}
		events = append(events, domain.ClickEvent{
			CreatedAt: rec.CreatedAt.Time(),
			Continent: rec.Continent,
			Country:   rec.Country,
			State:     rec.State,
			City:      rec.City,
			Device:    rec.Device,
			Browser:   rec.Browser,
			OS:        rec.OS,
		})
	}
	return events, nil
}

func clickList(raw []byte) (json.RawMessage, error) {
	switch raw[0] {
	case '[':
		return raw, nil
	case '{':
	default:
		return nil, errNoClicks
	}

	var obj struct {
		Clicks json.RawMessage `json:"clicks"`
		Data   *struct {
			Clicks json.RawMessage `json:"clicks"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}

	switch {
	case len(obj.Clicks) > 0:
		return obj.Clicks, nil
	case obj.Data != nil && len(obj.Data.Clicks) > 0:
		return obj.Data.Clicks, nil
	default:
		return nil, errNoClicks
	}
}
