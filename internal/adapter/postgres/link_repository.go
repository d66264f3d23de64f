package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"inscription-api/internal/core/domain"
	"inscription-api/internal/core/port"
)

const uniqueViolation = "23505"

const linkColumns = `
            id,
            kind,
            destination_url,
            short_code,
            ambassador_first_name,
            ambassador_last_name,
            ambassador_email,
            is_active,
            is_deleted,
            expires_at,
            click_count,
            created_at`

// LinkRepository implements port.LinkRepository using pgxpool for PostgreSQL.
type LinkRepository struct {
	pool *pgxpool.Pool
}

// NewLinkRepository returns a new repository instance.
func NewLinkRepository(pool *pgxpool.Pool) *LinkRepository {
	return &LinkRepository{pool: pool}
}

// ListEligibleLinks returns the links eligible at now in rotation order.
func (r *LinkRepository) ListEligibleLinks(ctx context.Context, now time.Time) ([]domain.MarketingLink, error) {
	query := `SELECT` + linkColumns + `
        FROM marketing_links
        WHERE is_active
          AND NOT is_deleted
          AND (expires_at IS NULL OR expires_at > $1)
        ORDER BY created_at ASC, id ASC`
	rows, err := r.pool.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("query eligible links: %w", err)
	}
	return collectLinks(rows)
}

// ListLinks returns every link, newest first.
func (r *LinkRepository) ListLinks(ctx context.Context) ([]domain.MarketingLink, error) {
	query := `SELECT` + linkColumns + `
        FROM marketing_links
        ORDER BY created_at DESC, id DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query links: %w", err)
	}
	return collectLinks(rows)
}

// CreateLink inserts link and sets its generated ID and CreatedAt.
func (r *LinkRepository) CreateLink(ctx context.Context, link *domain.MarketingLink) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO marketing_links
            (kind, destination_url, short_code, ambassador_first_name, ambassador_last_name,
             ambassador_email, is_active, is_deleted, expires_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, click_count, created_at`,
		link.Kind,
		link.DestinationURL,
		link.ShortCode,
		link.Ambassador.FirstName,
		link.Ambassador.LastName,
		link.Ambassador.Email,
		link.Active,
		link.Deleted,
		link.ExpiresAt,
	).Scan(&link.ID, &link.ClickCount, &link.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("short code already in use: %w", port.ErrConflict)
		}
		return fmt.Errorf("insert link: %w", err)
	}
	return nil
}

// SetActive updates the activation flag of a link.
func (r *LinkRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.updateFlag(ctx, `UPDATE marketing_links SET is_active = $2 WHERE id = $1`, id, active)
}

// SetDeleted updates the soft-delete flag of a link.
func (r *LinkRepository) SetDeleted(ctx context.Context, id int64, deleted bool) error {
	return r.updateFlag(ctx, `UPDATE marketing_links SET is_deleted = $2 WHERE id = $1`, id, deleted)
}

func (r *LinkRepository) updateFlag(ctx context.Context, query string, id int64, value bool) error {
	tag, err := r.pool.Exec(ctx, query, id, value)
	if err != nil {
		return fmt.Errorf("update link %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("link %d: %w", id, port.ErrNotFound)
	}
	return nil
}

func collectLinks(rows pgx.Rows) ([]domain.MarketingLink, error) {
	links, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MarketingLink, error) {
		var l domain.MarketingLink
		err := row.Scan(
			&l.ID,
			&l.Kind,
			&l.DestinationURL,
			&l.ShortCode,
			&l.Ambassador.FirstName,
			&l.Ambassador.LastName,
			&l.Ambassador.Email,
			&l.Active,
			&l.Deleted,
			&l.ExpiresAt,
			&l.ClickCount,
			&l.CreatedAt,
		)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan links: %w", err)
	}
	return links, nil
}
