package database

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type SiteTextRepository struct {
	DB *sql.DB
}

func NewSiteTextRepository(db *sql.DB) *SiteTextRepository {
	return &SiteTextRepository{DB: db}
}

// GetByKeys returns the stored values for the requested keys. Keys without
// a row are simply absent from the map; callers fall back to defaults.
func (r *SiteTextRepository) GetByKeys(ctx context.Context, keys []string) (map[string]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT key, value FROM site_texts WHERE key = ANY($1)`, pq.Array(keys))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string, len(keys))
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		out[key] = value
	}
	return out, rows.Err()
}

func (r *SiteTextRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO site_texts (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value)
	return err
}
