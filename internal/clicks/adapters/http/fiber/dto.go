package fiber

import analytics "link-analytics-service/internal/analytics/core/domain"

// CreateClickRequest represents a recorded visit of a short link.
// createdAt is unix milliseconds or an RFC 3339 string. Categorical fields
// accept any JSON value; anything but a string is stored as absent and
// reported as "Unknown" by the stats endpoint.
// @Description Click ingestion DTO
type CreateClickRequest struct {
	ClickID   string         `json:"clickId" validate:"omitempty,uuid" example:"6f1c2a4e-9b7d-4c1e-8f3a-2d5b6c7e8f90"`
	ShortCode string         `json:"shortCode" validate:"required,max=64" example:"abc123"`
	CreatedAt analytics.EpochMillis `json:"createdAt" validate:"required,gt=0" swaggertype:"integer" example:"1733572800000"`
	Continent analytics.Attr `json:"continent" swaggertype:"string" example:"North America"`
	Country   analytics.Attr `json:"country" swaggertype:"string" example:"USA"`
	State     analytics.Attr `json:"state" swaggertype:"string" example:"California"`
	City      analytics.Attr `json:"city" swaggertype:"string" example:"San Francisco"`
	Device    analytics.Attr `json:"device" swaggertype:"string" example:"mobile"`
	Browser   analytics.Attr `json:"browser" swaggertype:"string" example:"Chrome"`
	OS        analytics.Attr `json:"os" swaggertype:"string" example:"Android"`
}

type CreateClickResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkCreateClicksRequest struct {
	Clicks []CreateClickRequest `json:"clicks" validate:"required,min=1,max=1000,dive"`
}

type BulkCreateClicksResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

