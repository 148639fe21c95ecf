package domain

import (
	"sort"
	"time"

	links "link-analytics-service/internal/links/core/domain"
)

// Counts maps a category label to the number of clicks in it.
type Counts map[string]int

// Total sums all buckets.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Bucket is one category and its count.
type Bucket struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// Ranked returns the buckets ordered by count (descending), then label.
func (c Counts) Ranked() []Bucket {
	out := make([]Bucket, 0, len(c))
	for label, n := range c {
		out = append(out, Bucket{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// HourCounts maps an hour of day (0-23) to a click count.
type HourCounts map[int]int

func (h HourCounts) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// Summary is the aggregated view over a set of clicks.
type Summary struct {
	TotalClicks       int        `json:"totalClicks" yaml:"totalClicks"`
	ClicksByContinent Counts     `json:"clicksByContinent" yaml:"clicksByContinent"`
	ClicksByCountry   Counts     `json:"clicksByCountry" yaml:"clicksByCountry"`
	ClicksByState     Counts     `json:"clicksByState" yaml:"clicksByState"`
	ClicksByCity      Counts     `json:"clicksByCity" yaml:"clicksByCity"`
	ClicksByDevice    Counts     `json:"clicksByDevice" yaml:"clicksByDevice"`
	ClicksByBrowser   Counts     `json:"clicksByBrowser" yaml:"clicksByBrowser"`
	ClicksByOS        Counts     `json:"clicksByOs" yaml:"clicksByOs"`
	ClicksByTime      HourCounts `json:"clicksByTime" yaml:"clicksByTime"`
}

// ByField returns the mapping computed for f.
func (s Summary) ByField(f Field) Counts {
	switch f {
	case Continent:
		return s.ClicksByContinent
	case Country:
		return s.ClicksByCountry
	case State:
		return s.ClicksByState
	case City:
		return s.ClicksByCity
	case Device:
		return s.ClicksByDevice
	case Browser:
		return s.ClicksByBrowser
	case OS:
		return s.ClicksByOS
	default:
		return nil
	}
}

// LinkStats is the analytics view of one short link over a window. Clicks
// holds the events inside the window, oldest first.
type LinkStats struct {
	ShortCode string
	Link      links.Link
	Window    Window
	From      time.Time
	To        time.Time
	Clicks    []ClickEvent
	Summary   Summary
}
