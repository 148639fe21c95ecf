package domain

import analytics "link-analytics-service/internal/analytics/core/domain"

// Click is a stored visit of a short link. The categorical fields live in
// Event so the stats side reads back exactly what was written.
type Click struct {
	ClickID   string
	ShortCode string
	Event     analytics.ClickEvent
}
