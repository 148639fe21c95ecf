// Package aggregator turns raw click records into grouped analytics.
//
// Every function here is a pure pass over its input: no state survives
// between calls and each result is freshly allocated, so callers may run
// them concurrently on independent slices.
package aggregator

import (
	"strings"
	"time"

	"link-analytics-service/internal/analytics/core/domain"
)

// Unknown is the bucket for clicks whose dimension is missing or not a string.
const Unknown = "Unknown"

// FilterByWindow keeps the events strictly younger than window, measured in
// milliseconds back from now. Order is preserved. A window of zero length
// (unrecognised unit or no magnitude) keeps nothing.
func FilterByWindow(events []domain.ClickEvent, window domain.Window, now time.Time) []domain.ClickEvent {
	limit := window.Millis()
	out := make([]domain.ClickEvent, 0, len(events))
	if limit <= 0 {
		return out
	}

	nowMs := now.UnixMilli()
	for _, e := range events {
		if nowMs-e.CreatedAt.UnixMilli() < limit {
			out = append(out, e)
		}
	}
	return out
}

// GroupByField counts events per category of field. Labels are trimmed and
// compared case-sensitively; absent or empty values count as Unknown.
func GroupByField(events []domain.ClickEvent, field domain.Field) domain.Counts {
	counts := make(domain.Counts)
	for _, e := range events {
		counts[label(field.Value(e))]++
	}
	return counts
}

func label(a domain.Attr) string {
	if !a.Valid || a.String == "" {
		return Unknown
	}
	return strings.TrimSpace(a.String)
}

// GroupByHour counts events per hour of day in the process-local time zone.
func GroupByHour(events []domain.ClickEvent) domain.HourCounts {
	return GroupByHourIn(events, time.Local)
}

// GroupByHourIn counts events per hour of day as observed in loc.
// A nil loc means time.Local.
func GroupByHourIn(events []domain.ClickEvent, loc *time.Location) domain.HourCounts {
	if loc == nil {
		loc = time.Local
	}
	counts := make(domain.HourCounts)
	for _, e := range events {
		counts[e.CreatedAt.In(loc).Hour()]++
	}
	return counts
}

// ComputeSummary aggregates events along every dimension, bucketing hours in
// the process-local time zone.
func ComputeSummary(events []domain.ClickEvent) domain.Summary {
	return ComputeSummaryIn(events, time.Local)
}

// ComputeSummaryIn is ComputeSummary with hours bucketed in loc.
func ComputeSummaryIn(events []domain.ClickEvent, loc *time.Location) domain.Summary {
	return domain.Summary{
		TotalClicks:       len(events),
		ClicksByContinent: GroupByField(events, domain.Continent),
		ClicksByCountry:   GroupByField(events, domain.Country),
		ClicksByState:     GroupByField(events, domain.State),
		ClicksByCity:      GroupByField(events, domain.City),
		ClicksByDevice:    GroupByField(events, domain.Device),
		ClicksByBrowser:   GroupByField(events, domain.Browser),
		ClicksByOS:        GroupByField(events, domain.OS),
		ClicksByTime:      GroupByHourIn(events, loc),
	}
}
