package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"inscription-api/internal/core/domain"
	"inscription-api/internal/core/port"
)

const (
	DefaultHistoryLimit = 100
	MaxHistoryLimit     = 1000
)

// ClickUseCase records page-level click events and serves reports.
type ClickUseCase struct {
	repo  port.EventRepository
	clock func() time.Time
}

// NewClickUseCase creates the click tracking use case.
func NewClickUseCase(repo port.EventRepository) *ClickUseCase {
	return &ClickUseCase{repo: repo, clock: time.Now}
}

// RecordClick appends one event of the given type. Dispatch attributions
// are recorded by the rotation and may not be submitted here.
func (u *ClickUseCase) RecordClick(ctx context.Context, eventType domain.EventType) error {
	if !eventType.Valid() || eventType == domain.EventLinkClick {
		return fmt.Errorf("%w: unknown click type %q", port.ErrInvalidInput, eventType)
	}
	return u.repo.InsertEvent(ctx, domain.AttributionEvent{
		ID:        uuid.New(),
		Type:      eventType,
		CreatedAt: u.clock().UTC(),
	})
}

// ClickHistory returns the most recent events. The limit is clamped to
// [1, MaxHistoryLimit]; zero selects DefaultHistoryLimit.
func (u *ClickUseCase) ClickHistory(ctx context.Context, limit int) ([]port.ClickHistoryItem, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	return u.repo.ClickHistory(ctx, limit)
}

// GetStats returns event counts for the period. A zero period defaults to
// the last 24 hours.
func (u *ClickUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	now := u.clock().UTC()
	if req.To.IsZero() {
		req.To = now
	}
	if req.From.IsZero() {
		req.From = req.To.Add(-24 * time.Hour)
	}
	if req.From.After(req.To) {
		return nil, fmt.Errorf("%w: 'from' is after 'to'", port.ErrInvalidInput)
	}
	return u.repo.GetStats(ctx, req)
}
