package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"inscription-api/internal/core/domain"
	"inscription-api/internal/core/port"
)

const (
	maxURLLength       = 2048
	maxShortCodeLength = 64
)

// LinkUseCase implements the administration of marketing links.
type LinkUseCase struct {
	repo  port.LinkRepository
	clock func() time.Time
}

// NewLinkUseCase creates the link administration use case.
func NewLinkUseCase(repo port.LinkRepository) *LinkUseCase {
	return &LinkUseCase{repo: repo, clock: time.Now}
}

// ListLinks returns every link, soft-deleted ones included, newest first.
func (u *LinkUseCase) ListLinks(ctx context.Context) ([]domain.MarketingLink, error) {
	return u.repo.ListLinks(ctx)
}

// CreateLink validates req and stores a new active link. Personalised
// links require a short code; default links may omit it.
func (u *LinkUseCase) CreateLink(ctx context.Context, req port.CreateLinkReq) (*domain.MarketingLink, error) {
	if req.Kind == "" {
		req.Kind = domain.LinkKindPersonalized
	}
	if !req.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown link kind %q", port.ErrInvalidInput, req.Kind)
	}
	if err := validateDestination(req.DestinationURL); err != nil {
		return nil, err
	}

	code := strings.TrimSpace(req.ShortCode)
	if req.Kind == domain.LinkKindPersonalized && code == "" {
		return nil, fmt.Errorf("%w: short code is required", port.ErrInvalidInput)
	}
	if len(code) > maxShortCodeLength {
		return nil, fmt.Errorf("%w: short code too long", port.ErrInvalidInput)
	}
	if req.ExpiresAt != nil && !req.ExpiresAt.After(u.clock()) {
		return nil, fmt.Errorf("%w: expiry must be in the future", port.ErrInvalidInput)
	}

	link := &domain.MarketingLink{
		Kind:           req.Kind,
		DestinationURL: req.DestinationURL,
		Ambassador:     req.Ambassador,
		Active:         true,
		ExpiresAt:      req.ExpiresAt,
	}
	if code != "" {
		link.ShortCode = &code
	}
	if err := u.repo.CreateLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// SetLinkActive activates or deactivates a link.
func (u *LinkUseCase) SetLinkActive(ctx context.Context, id int64, active bool) error {
	return u.repo.SetActive(ctx, id, active)
}

// DeleteLink soft-deletes a link. It leaves the rotation on the next call.
func (u *LinkUseCase) DeleteLink(ctx context.Context, id int64) error {
	return u.repo.SetDeleted(ctx, id, true)
}

// RestoreLink reverts a soft delete.
func (u *LinkUseCase) RestoreLink(ctx context.Context, id int64) error {
	return u.repo.SetDeleted(ctx, id, false)
}

func validateDestination(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: destination url is required", port.ErrInvalidInput)
	}
	if len(raw) > maxURLLength {
		return fmt.Errorf("%w: destination url too long", port.ErrInvalidInput)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: invalid destination url", port.ErrInvalidInput)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: destination url scheme must be http or https", port.ErrInvalidInput)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: destination url must include host", port.ErrInvalidInput)
	}
	return nil
}
