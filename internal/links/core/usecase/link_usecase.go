package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"regexp"
	"strings"
	"time"

	"link-analytics-service/internal/links/core/domain"
	"link-analytics-service/internal/links/core/ports"
)

var (
	ErrInvalidLink       = errors.New("long url must be an absolute http or https url")
	ErrInvalidShortCode  = errors.New("short code is required")
	ErrInvalidCustomCode = errors.New("custom code must be 6-20 letters, digits or underscores")
	ErrCodeTaken         = errors.New("short code already in use")
	ErrLinkNotFound      = errors.New("link not found")
)

var customCodePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{6,20}$`)

const (
	codeCharset         = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	generatedCodeLength = 7
	maxCodeAttempts     = 5
)

// ValidCustomCode reports whether code may be chosen by a user.
func ValidCustomCode(code string) bool {
	return customCodePattern.MatchString(code)
}

type LinkUseCase struct {
	repo    ports.LinkRepositoryPort
	now     func() time.Time
	newCode func() (string, error)
}

func NewLinkUseCase(repo ports.LinkRepositoryPort) *LinkUseCase {
	return &LinkUseCase{
		repo:    repo,
		now:     time.Now,
		newCode: generateShortCode,
	}
}

// WithClock replaces the time source; used by tests.
func (uc *LinkUseCase) WithClock(now func() time.Time) *LinkUseCase {
	uc.now = now
	return uc
}

// WithCodeGenerator replaces the random short code source; used by tests.
func (uc *LinkUseCase) WithCodeGenerator(gen func() (string, error)) *LinkUseCase {
	uc.newCode = gen
	return uc
}

type CreateLinkInput struct {
	LongURL    string
	CustomCode string // optional; generated when empty
}

// CreateLink stores a new link. A generated code that collides with an
// existing one is redrawn a few times before giving up.
func (uc *LinkUseCase) CreateLink(ctx context.Context, in CreateLinkInput) (*domain.Link, error) {
	longURL := strings.TrimSpace(in.LongURL)
	if !validLongURL(longURL) {
		return nil, ErrInvalidLink
	}

	link := &domain.Link{
		LongURL:   longURL,
		CreatedAt: time.UnixMilli(uc.now().UnixMilli()).UTC(),
	}

	if in.CustomCode != "" {
		if !ValidCustomCode(in.CustomCode) {
			return nil, ErrInvalidCustomCode
		}
		link.ShortCode = in.CustomCode

		created, err := uc.repo.InsertLink(ctx, link)
		if err != nil {
			return nil, err
		}
		if !created {
			return nil, ErrCodeTaken
		}
		return link, nil
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := uc.newCode()
		if err != nil {
			return nil, fmt.Errorf("generate short code: %w", err)
		}
		link.ShortCode = code

		created, err := uc.repo.InsertLink(ctx, link)
		if err != nil {
			return nil, err
		}
		if created {
			return link, nil
		}
	}

	return nil, fmt.Errorf("generate short code: %d collisions in a row", maxCodeAttempts)
}

func (uc *LinkUseCase) GetLink(ctx context.Context, shortCode string) (*domain.Link, error) {
	code := strings.TrimSpace(shortCode)
	if code == "" {
		return nil, ErrInvalidShortCode
	}

	link, found, err := uc.repo.FindLink(ctx, code)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrLinkNotFound
	}
	return &link, nil
}

type RenameLinkInput struct {
	ExistingCode string
	CustomCode   string
}

// RenameLink replaces a link's short code with a custom one. Recorded clicks
// follow the link.
func (uc *LinkUseCase) RenameLink(ctx context.Context, in RenameLinkInput) (*domain.Link, error) {
	if !ValidCustomCode(in.CustomCode) {
		return nil, ErrInvalidCustomCode
	}

	link, err := uc.GetLink(ctx, in.ExistingCode)
	if err != nil {
		return nil, err
	}
	if link.ShortCode == in.CustomCode {
		return link, nil
	}

	_, taken, err := uc.repo.FindLink(ctx, in.CustomCode)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrCodeTaken
	}

	renamed, err := uc.repo.RenameLink(ctx, link.ShortCode, in.CustomCode)
	if err != nil {
		return nil, err
	}
	if !renamed {
		return nil, ErrLinkNotFound
	}

	link.ShortCode = in.CustomCode
	return link, nil
}

// DeleteLink removes a link and its clicks and returns what was deleted.
func (uc *LinkUseCase) DeleteLink(ctx context.Context, shortCode string) (*domain.Link, error) {
	link, err := uc.GetLink(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	deleted, err := uc.repo.DeleteLink(ctx, link.ShortCode)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, ErrLinkNotFound
	}
	return link, nil
}

func validLongURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func generateShortCode() (string, error) {
	b := make([]byte, generatedCodeLength)
	for i := range b {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeCharset))))
		if err != nil {
			return "", err
		}
		b[i] = codeCharset[num.Int64()]
	}
	return string(b), nil
}
