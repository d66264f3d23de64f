package port

import (
	"context"
	"time"

	"inscription-api/internal/core/domain"
)

// LinkRepository is the persistence port for marketing links.
type LinkRepository interface {
	// ListEligibleLinks returns links eligible at now ordered by creation
	// time ascending, ties broken by id. The order is stable across calls.
	ListEligibleLinks(ctx context.Context, now time.Time) ([]domain.MarketingLink, error)
	// ListLinks returns every link, deleted ones included, newest first.
	ListLinks(ctx context.Context) ([]domain.MarketingLink, error)
	// CreateLink inserts link and fills in its ID and CreatedAt. A taken
	// short code yields ErrConflict.
	CreateLink(ctx context.Context, link *domain.MarketingLink) error
	// SetActive toggles the activation flag. Unknown ids yield ErrNotFound.
	SetActive(ctx context.Context, id int64, active bool) error
	// SetDeleted toggles the soft-delete flag. Unknown ids yield ErrNotFound.
	SetDeleted(ctx context.Context, id int64, deleted bool) error
}

// RotationStateStore keeps the singleton rotation record per key.
// Implementations must make SwapState and UpsertState atomic per key.
type RotationStateStore interface {
	// GetState returns the state stored under key, or nil when the key was
	// never written.
	GetState(ctx context.Context, key string) (*domain.RotationState, error)
	// SwapState stores next as the last served link only if the stored
	// last link still equals expected (nil meaning absent or empty). It
	// reports false without error when another writer got there first.
	SwapState(ctx context.Context, key string, expected *int64, next int64, at time.Time) (bool, error)
	// UpsertState unconditionally stores next under key. Repeating the same
	// call leaves the same state.
	UpsertState(ctx context.Context, key string, next int64, at time.Time) error
}

// ClickRecorder records dispatch attributions.
type ClickRecorder interface {
	// RecordAttribution appends one link_click event for linkID and
	// increments the link's click counter. Delivery is at-least-once.
	RecordAttribution(ctx context.Context, linkID int64) error
}

// EventRepository stores and aggregates tracked click events.
type EventRepository interface {
	// InsertEvent appends ev.
	InsertEvent(ctx context.Context, ev domain.AttributionEvent) error
	// ClickHistory returns up to limit events newest first.
	ClickHistory(ctx context.Context, limit int) ([]ClickHistoryItem, error)
	// GetStats counts events per type in a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}
