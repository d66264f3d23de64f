package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inscription-api/internal/core/domain"
)

// RotationStateRepository implements port.RotationStateStore on the
// rotation_state table. Each write is a single INSERT ... ON CONFLICT
// statement, so it is atomic per key without explicit locking.
type RotationStateRepository struct {
	pool *pgxpool.Pool
}

// NewRotationStateRepository returns a new repository instance.
func NewRotationStateRepository(pool *pgxpool.Pool) *RotationStateRepository {
	return &RotationStateRepository{pool: pool}
}

// GetState returns the state stored under key or nil when absent.
func (r *RotationStateRepository) GetState(ctx context.Context, key string) (*domain.RotationState, error) {
	state := domain.RotationState{Key: key}
	err := r.pool.QueryRow(ctx, `SELECT last_link_id, updated_at FROM rotation_state WHERE key = $1`, key).
		Scan(&state.LastLinkID, &state.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select rotation state: %w", err)
	}
	return &state, nil
}

// SwapState writes next only when the stored last link is still expected.
// A missing row is inserted whatever the expectation.
func (r *RotationStateRepository) SwapState(ctx context.Context, key string, expected *int64, next int64, at time.Time) (bool, error) {
	var stored string
	err := r.pool.QueryRow(ctx, `
        INSERT INTO rotation_state (key, last_link_id, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (key) DO UPDATE
            SET last_link_id = EXCLUDED.last_link_id,
                updated_at   = EXCLUDED.updated_at
            WHERE rotation_state.last_link_id IS NOT DISTINCT FROM $4::bigint
        RETURNING key`, key, next, at, expected).Scan(&stored)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("swap rotation state: %w", err)
	}
	return true, nil
}

// UpsertState writes next regardless of the stored value.
func (r *RotationStateRepository) UpsertState(ctx context.Context, key string, next int64, at time.Time) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO rotation_state (key, last_link_id, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (key) DO UPDATE
            SET last_link_id = EXCLUDED.last_link_id,
                updated_at   = EXCLUDED.updated_at`, key, next, at)
	if err != nil {
		return fmt.Errorf("upsert rotation state: %w", err)
	}
	return nil
}
