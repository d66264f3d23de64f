package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo marketing links: a handful of default links and a few
// personalised ambassador links with staggered expiries. Re-running it is
// harmless; rows with an existing short code are skipped.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	now := time.Now().UTC()

	for i := 1; i <= 3; i++ {
		code := fmt.Sprintf("default-%d", i)
		_, err := db.Exec(ctx, `INSERT INTO marketing_links
    (kind, destination_url, short_code, created_at)
VALUES ('default', $1, $2, $3) ON CONFLICT (short_code) DO NOTHING`,
			fmt.Sprintf("https://example.com/inscription/%d", i), code, now.Add(time.Duration(i)*time.Second))
		if err != nil {
			return err
		}
	}

	ambassadors := []struct{ first, last string }{
		{"Marie", "Dupont"},
		{"Jean", "Martin"},
		{"Awa", "Diallo"},
	}
	for i, a := range ambassadors {
		code := fmt.Sprintf("amb-%d", i+1)
		expires := now.AddDate(0, 0, 7*(i+1))
		_, err := db.Exec(ctx, `INSERT INTO marketing_links
    (kind, destination_url, short_code, ambassador_first_name, ambassador_last_name,
     ambassador_email, expires_at, created_at)
VALUES ('personalized', $1, $2, $3, $4, $5, $6, $7) ON CONFLICT (short_code) DO NOTHING`,
			fmt.Sprintf("https://example.com/inscription?ref=%s", code), code, a.first, a.last,
			fmt.Sprintf("%s.%s@example.com", a.first, a.last), expires, now.Add(time.Duration(10+i)*time.Second))
		if err != nil {
			return err
		}
	}
	return nil
}
