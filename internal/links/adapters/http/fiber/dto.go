package fiber

import "link-analytics-service/internal/links/core/domain"

type CreateLinkRequest struct {
	LongURL    string `json:"longUrl" validate:"required,http_url,max=2048" example:"https://example.com/article"`
	CustomCode string `json:"customCode" example:"spring_sale"` // optional, 6-20 of [a-zA-Z0-9_]
}

type RenameLinkRequest struct {
	ExistingCode string `json:"existingCode" validate:"required" example:"aZ3kP9q"`
	CustomCode   string `json:"customCode" validate:"required" example:"spring_sale"`
}

type LinkResponse struct {
	ShortCode string `json:"shortCode" example:"spring_sale"`
	LongURL   string `json:"longUrl" example:"https://example.com/article"`
	CreatedAt int64  `json:"createdAt" example:"1733572800000"` // unix ms
}

type ShortURLResponse struct {
	ShortURL LinkResponse `json:"shortUrl"`
}

type DeletedURLResponse struct {
	DeletedURL LinkResponse `json:"deletedUrl"`
}

func toLinkResponse(l *domain.Link) LinkResponse {
	return LinkResponse{
		ShortCode: l.ShortCode,
		LongURL:   l.LongURL,
		CreatedAt: l.CreatedAt.UnixMilli(),
	}
}
