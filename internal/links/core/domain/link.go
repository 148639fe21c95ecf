package domain

import "time"

// Link maps a short code to the URL it redirects to.
type Link struct {
	ShortCode string
	LongURL   string
	CreatedAt time.Time
}
