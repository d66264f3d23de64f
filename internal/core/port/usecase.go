package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"inscription-api/internal/core/domain"
)

// RotationUseCase is the primary port of the link rotation engine.
type RotationUseCase interface {
	// ResolveNextLink picks the next eligible link, persists the rotation
	// state and returns the dispatch. ErrNoEligibleLink is returned when
	// nothing can be served; in that case no state is written.
	ResolveNextLink(ctx context.Context) (*Dispatch, error)
}

// Attribution schedules click attribution for a served link without
// blocking the caller on storage.
type Attribution interface {
	Enqueue(linkID int64)
}

// LinkUseCase covers the administration of marketing links.
type LinkUseCase interface {
	ListLinks(ctx context.Context) ([]domain.MarketingLink, error)
	CreateLink(ctx context.Context, req CreateLinkReq) (*domain.MarketingLink, error)
	SetLinkActive(ctx context.Context, id int64, active bool) error
	DeleteLink(ctx context.Context, id int64) error
	RestoreLink(ctx context.Context, id int64) error
}

// ClickUseCase records page-level click events and reports on them.
type ClickUseCase interface {
	RecordClick(ctx context.Context, eventType domain.EventType) error
	ClickHistory(ctx context.Context, limit int) ([]ClickHistoryItem, error)
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// Dispatch is the outcome of a rotation decision.
type Dispatch struct {
	LinkID         int64
	DestinationURL string
}

// CreateLinkReq carries the admin input for a new link. Kind defaults to
// personalized.
type CreateLinkReq struct {
	Kind           domain.LinkKind
	DestinationURL string
	ShortCode      string
	Ambassador     domain.Ambassador
	ExpiresAt      *time.Time
}

// ClickHistoryItem is a tracked event joined with the link it refers to.
// Link fields are nil for events without a link.
type ClickHistoryItem struct {
	ID         uuid.UUID
	Type       domain.EventType
	CreatedAt  time.Time
	LinkID     *int64
	LinkURL    *string
	LinkKind   *domain.LinkKind
	Ambassador domain.Ambassador
}

type StatsReq struct {
	From   time.Time
	To     time.Time
	LinkID *int64
}

// StatsResp holds event counts per type for the requested period. Every
// known type is present, zero when nothing was recorded.
type StatsResp struct {
	From   time.Time
	To     time.Time
	Counts map[domain.EventType]int64
	Total  int64
}
