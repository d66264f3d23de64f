package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"inscription-api/internal/core/domain"
	"inscription-api/internal/core/port"
)

// DefaultRotationKey is the key the singleton rotation record is stored under.
const DefaultRotationKey = "current_link_id"

// RotationOptions tunes the rotation engine. Zero values select the
// defaults: the default key, uniform policy, no hold window and three
// compare-and-swap attempts.
type RotationOptions struct {
	Key    string
	Policy domain.RotationPolicy
	// Hold keeps serving the last link while the stored state is younger
	// than Hold. Zero rotates on every request.
	Hold time.Duration
	// CASAttempts bounds the optimistic state updates before the engine
	// falls back to an unconditional upsert.
	CASAttempts int
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
}

// RotationUseCase serves eligible marketing links round-robin. It keeps no
// state of its own; every decision re-reads the link set and the rotation
// record from storage, so any number of instances can run side by side.
type RotationUseCase struct {
	links  port.LinkRepository
	states port.RotationStateStore
	opts   RotationOptions
	logger *slog.Logger
}

// NewRotationUseCase creates the rotation engine.
func NewRotationUseCase(links port.LinkRepository, states port.RotationStateStore, opts RotationOptions, logger *slog.Logger) *RotationUseCase {
	if opts.Key == "" {
		opts.Key = DefaultRotationKey
	}
	if !opts.Policy.Valid() {
		opts.Policy = domain.PolicyUniform
	}
	if opts.CASAttempts <= 0 {
		opts.CASAttempts = 3
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RotationUseCase{links: links, states: states, opts: opts, logger: logger}
}

// ResolveNextLink returns the link following the last served one in
// creation order. A last link that is no longer eligible restarts the
// sequence at the first link. Storage failures abort the dispatch: no link
// is returned unless the new state was written.
func (u *RotationUseCase) ResolveNextLink(ctx context.Context) (*port.Dispatch, error) {
	now := u.opts.Clock().UTC()

	eligible, err := u.links.ListEligibleLinks(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list eligible links: %w", err)
	}
	pool := u.opts.Policy.Pool(eligible)
	if len(pool) == 0 {
		return nil, port.ErrNoEligibleLink
	}

	var next domain.MarketingLink
	for attempt := 1; attempt <= u.opts.CASAttempts; attempt++ {
		state, err := u.states.GetState(ctx, u.opts.Key)
		if err != nil {
			return nil, fmt.Errorf("get rotation state: %w", err)
		}
		if held, ok := u.held(state, pool, now); ok {
			return dispatchOf(held), nil
		}

		var last *int64
		if state != nil {
			last = state.LastLinkID
		}
		next = pool[domain.NextIndex(pool, last)]

		swapped, err := u.states.SwapState(ctx, u.opts.Key, last, next.ID, now)
		if err != nil {
			return nil, fmt.Errorf("swap rotation state: %w", err)
		}
		if swapped {
			return dispatchOf(next), nil
		}
		u.logger.Debug("rotation state changed concurrently",
			slog.Int("attempt", attempt),
			slog.Int64("link_id", next.ID),
		)
	}

	// Persistent contention: settle for the last computed link.
	if err = u.states.UpsertState(ctx, u.opts.Key, next.ID, now); err != nil {
		return nil, fmt.Errorf("upsert rotation state: %w", err)
	}
	return dispatchOf(next), nil
}

// held returns the currently held link when the hold window is active and
// that link is still in the pool.
func (u *RotationUseCase) held(state *domain.RotationState, pool []domain.MarketingLink, now time.Time) (domain.MarketingLink, bool) {
	if u.opts.Hold <= 0 || state == nil || state.LastLinkID == nil {
		return domain.MarketingLink{}, false
	}
	if now.Sub(state.UpdatedAt) >= u.opts.Hold {
		return domain.MarketingLink{}, false
	}
	i := domain.IndexOf(pool, *state.LastLinkID)
	if i < 0 {
		return domain.MarketingLink{}, false
	}
	return pool[i], true
}

func dispatchOf(l domain.MarketingLink) *port.Dispatch {
	return &port.Dispatch{LinkID: l.ID, DestinationURL: l.DestinationURL}
}
