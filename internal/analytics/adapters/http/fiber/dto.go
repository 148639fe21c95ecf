package fiber

import "link-analytics-service/internal/analytics/core/domain"

type SummaryResponse struct {
	TotalClicks       int            `json:"totalClicks"`
	ClicksByContinent map[string]int `json:"clicksByContinent"`
	ClicksByCountry   map[string]int `json:"clicksByCountry"`
	ClicksByState     map[string]int `json:"clicksByState"`
	ClicksByCity      map[string]int `json:"clicksByCity"`
	ClicksByDevice    map[string]int `json:"clicksByDevice"`
	ClicksByBrowser   map[string]int `json:"clicksByBrowser"`
	ClicksByOS        map[string]int `json:"clicksByOs"`
	ClicksByTime      map[int]int    `json:"clicksByTime"` // hour of day -> clicks
}

// LinkResponse is the URL record the stats are about.
type LinkResponse struct {
	ShortCode string `json:"shortCode" example:"abc1234"`
	LongURL   string `json:"longUrl" example:"https://example.com/article"`
	CreatedAt int64  `json:"createdAt" example:"1733572800000"` // unix ms
}

type StatsResponse struct {
	ShortCode string              `json:"shortCode" example:"abc1234"`
	ShortURL  LinkResponse        `json:"shortUrl"`
	Window    string              `json:"window" example:"7d"`
	From      int64               `json:"from"` // unix ms
	To        int64               `json:"to"`   // unix ms
	Clicks    []domain.ClickEvent `json:"clicks"`
	Summary   SummaryResponse     `json:"summary"`
}
