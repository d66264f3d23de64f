package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inscription-api/internal/core/domain"
	"inscription-api/internal/core/port"
)

// ClickRepository implements port.ClickRecorder and port.EventRepository
// on the tracking_events table.
type ClickRepository struct {
	pool *pgxpool.Pool
}

// NewClickRepository returns a new repository instance.
func NewClickRepository(pool *pgxpool.Pool) *ClickRepository {
	return &ClickRepository{pool: pool}
}

// RecordAttribution increments the click counter of the link and inserts a
// link_click event in one transaction.
func (r *ClickRepository) RecordAttribution(ctx context.Context, linkID int64) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `UPDATE marketing_links SET click_count = click_count + 1 WHERE id = $1`, linkID)
	if err != nil {
		return fmt.Errorf("increment click count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("link %d: %w", linkID, port.ErrNotFound)
	}
	_, err = tx.Exec(ctx, `INSERT INTO tracking_events (id, event_type, link_id, created_at) VALUES ($1,$2,$3,$4)`,
		uuid.New(), domain.EventLinkClick, linkID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert attribution: %w", err)
	}
	return nil
}

// InsertEvent appends ev.
func (r *ClickRepository) InsertEvent(ctx context.Context, ev domain.AttributionEvent) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO tracking_events (id, event_type, link_id, created_at) VALUES ($1,$2,$3,$4)`,
		ev.ID, ev.Type, ev.LinkID, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// ClickHistory returns the latest events with the details of their link.
func (r *ClickRepository) ClickHistory(ctx context.Context, limit int) ([]port.ClickHistoryItem, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT
            e.id,
            e.event_type,
            e.created_at,
            e.link_id,
            l.destination_url,
            l.kind,
            l.ambassador_first_name,
            l.ambassador_last_name,
            l.ambassador_email
        FROM tracking_events e
        LEFT JOIN marketing_links l ON l.id = e.link_id
        ORDER BY e.created_at DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query click history: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.ClickHistoryItem, error) {
		var it port.ClickHistoryItem
		err := row.Scan(
			&it.ID,
			&it.Type,
			&it.CreatedAt,
			&it.LinkID,
			&it.LinkURL,
			&it.LinkKind,
			&it.Ambassador.FirstName,
			&it.Ambassador.LastName,
			&it.Ambassador.Email,
		)
		return it, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan click history: %w", err)
	}
	return items, nil
}

// GetStats counts events per type between req.From and req.To inclusive,
// optionally restricted to one link.
func (r *ClickRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []any{req.From, req.To}
	query := `SELECT event_type, count(*) FROM tracking_events WHERE created_at >= $1 AND created_at <= $2`
	if req.LinkID != nil {
		query += ` AND link_id = $3`
		args = append(args, *req.LinkID)
	}
	query += ` GROUP BY event_type`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	resp := &port.StatsResp{From: req.From, To: req.To, Counts: make(map[domain.EventType]int64)}
	for _, t := range domain.EventTypes() {
		resp.Counts[t] = 0
	}
	for rows.Next() {
		var (
			t     domain.EventType
			count int64
		)
		if err = rows.Scan(&t, &count); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		resp.Counts[t] = count
		resp.Total += count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("read stats: %w", err)
	}
	return resp, nil
}
